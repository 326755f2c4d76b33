package format

import (
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message/catalog"
)

// Message keys are the English renderings. Keys without a translation for the
// formatter locale are printed as plain format strings.
const (
	LabelItems     = "%d items"
	LabelMore      = "+%d more"
	LabelDiscount  = "Discount"
	LabelShowing   = "Showing %d of %d"
	LabelUnknown   = "Unknown"
	LabelNoRecords = "No records found"
)

var korean = map[string]string{
	// order status
	"Completed": "완료",
	"Preparing": "준비중",
	"Pending":   "대기",
	"Cancelled": "취소",
	"Refunded":  "환불",

	// fulfillment
	"Dine-in":  "매장식사",
	"Takeout":  "포장",
	"Delivery": "배달",

	// payment
	"Card":   "카드",
	"Cash":   "현금",
	"Mobile": "모바일",

	// customer
	"Active":   "활성",
	"Inactive": "비활성",
	"Bronze":   "브론즈",
	"Silver":   "실버",
	"Gold":     "골드",
	"VIP":      "VIP",
	"Male":     "남성",
	"Female":   "여성",
	"Other":    "기타",

	LabelItems:     "%d개 상품",
	LabelMore:      "+%d개 더",
	LabelDiscount:  "할인",
	LabelShowing:   "%d건 / 전체 %d건",
	LabelUnknown:   "알 수 없음",
	LabelNoRecords: "검색 결과가 없습니다",

	// metric tiles
	"Total Sales":              "총 매출",
	"Total Orders":             "총 주문",
	"Average Order Value":      "평균 주문 금액",
	"Total Customers":          "총 고객",
	"Repeat Visit Rate":        "재방문율",
	"Orders Today":             "오늘 주문",
	"Active Stores":            "운영 매장",
	"Top Store":                "최고 매출 매장",
	"%d active":                "활성 %d명",
	"%d completed orders":      "완료 주문 %d건",
	"Excluding cancellations":  "취소·환불 제외",
	"Customers with 2+ orders": "2회 이상 주문 고객",
	"Latest business day":      "최근 영업일",

	// page titles
	"Restaurant Dashboard": "레스토랑 대시보드",
	"Customers":            "고객 관리",
	"Orders":               "주문 관리",
	"Sales":                "매출 분석",
	"Distribution":         "주문 분포",
	"Daily average":        "일 평균",
	"Peak hour":            "피크 시간",

	// page subtitles
	"Sales, orders and customers at a glance": "매출, 주문, 고객 현황을 한눈에",
	"Search and filter the customer list":     "고객 목록 검색 및 필터",
	"Search and filter recent orders":         "최근 주문 검색 및 필터",
	"Daily sales for the last 30 days":        "최근 30일 일별 매출",
	"Orders by category, hour and store":      "카테고리, 시간대, 매장별 주문",
}

var labels = buildCatalog()

func buildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))

	mustSet(b.Set(language.English, LabelItems,
		plural.Selectf(1, "%d", "one", "%d item", "other", "%d items")))

	for key, msg := range korean {
		mustSet(b.SetString(language.Korean, key, msg))
	}

	return b
}

func mustSet(err error) {
	if err != nil {
		panic(err)
	}
}
