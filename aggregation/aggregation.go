// C:\Users\seoro\OneDrive\바탕 화면\SEROE\aggregation\aggregation.go
package aggregation

import (
	"seroe/model"
	"seroe/parsers"
)

// AggregateShipment는 정제된 주문 행 전체를 상품 키별 총 출고 수량으로
// 집계합니다. 순수 함수이고, 결과 수량 합계는 모든 행의 유효 수량 합계와
// 같습니다.
func AggregateShipment(rows []model.OrderRow) model.ShipmentAggregate {
	results := make(model.ShipmentAggregate)
	for _, row := range rows {
		item := parsers.DeriveLineItem(row, false)
		results[item.ProductKey()] += item.EffectiveQuantity
	}
	return results
}

// GroupOrdersByRecipient는 박스 계산을 위해 주문을 수취인별로 묶습니다.
// 같은 수취인의 같은 상품 키는 수량을 합산합니다. 박스 규격이 같으므로
// 여기서는 200ml 를 240ml 로 접습니다.
func GroupOrdersByRecipient(rows []model.OrderRow) model.RecipientOrders {
	orders := make(model.RecipientOrders)
	for _, row := range rows {
		recipient := row.RecipientName
		if recipient == "" {
			recipient = model.UnknownRecipient
		}

		item := parsers.DeriveLineItem(row, true)
		key := item.ProductKey()

		if _, ok := orders[recipient]; !ok {
			orders[recipient] = make(map[string]int)
		}
		orders[recipient][key] += item.EffectiveQuantity
	}
	return orders
}
