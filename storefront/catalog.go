package storefront

import "github.com/Madhav-Gupta-28/seafood-backend-go/models"

// DefaultCatalog is written by the seed command into an empty store.
func DefaultCatalog() []models.Product {
	return []models.Product{
		{
			ID:    "p1",
			Title: "小資減脂海鮮組",
			Price: 1099,
			Images: []string{
				"https://images.unsplash.com/photo-1519708227418-c8fd9a32b7a2?q=80&w=600&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1544551763-46a013bb70d5?q=80&w=600&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1628873722908-f1c5c707d79b?q=80&w=600&auto=format&fit=crop",
			},
			Description:     []string{"嚴選低脂白肉魚片", "急凍鮮甜透抽", "無刺虱目魚肚", "適合單身或兩人小家庭"},
			LongDescription: "專為注重身材管理的您設計。嚴選低脂高蛋白的白肉魚，搭配口感Q彈的急凍透抽，簡單乾煎或清蒸即可享受大海的鮮甜。",
			Badge:           "熱銷推薦",
			Category:        models.CategoryPickup,
		},
		{
			ID:    "p2",
			Title: "輕盈好食海鮮組",
			Price: 1999,
			Images: []string{
				"https://images.unsplash.com/photo-1565680018434-b513d5e5fd47?q=80&w=600&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1626645738196-c2a7c87a8f58?q=80&w=600&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1548508930-b3b3fae96c4d?q=80&w=600&auto=format&fit=crop",
			},
			Description:     []string{"特大北海道干貝", "深海野生大草蝦", "鮮嫩鮭魚切片", "週末犒賞自己的最佳選擇"},
			LongDescription: "來自北海道的生食級干貝，搭配肉質紮實的野生大草蝦，適合週末在家與伴侶共享的晚餐。",
			Category:        models.CategoryPickup,
		},
		{
			ID:    "p3",
			Title: "過年澎湃團聚組",
			Price: 3999,
			Images: []string{
				"https://images.unsplash.com/photo-1553659971-f01207815844?q=80&w=600&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1583950285655-08197c36a28d?q=80&w=600&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1663046757656-788dfa935402?q=80&w=600&auto=format&fit=crop",
			},
			Description:     []string{"智利帝王蟹腳", "波士頓活凍龍蝦", "頂級鮑魚", "全家團圓必備豪華海鮮"},
			LongDescription: "年節團圓的餐桌主角！霸氣的帝王蟹腳與波士頓龍蝦，頂級食材一次到位，輕鬆煮出圍爐大餐。",
			Badge:           "節慶限定",
			Category:        models.CategoryDelivery,
		},
	}
}
