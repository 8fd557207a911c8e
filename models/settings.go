package models

type BrandFeature struct {
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
	IconURL     string `bson:"iconUrl,omitempty" json:"iconUrl,omitempty"`
}

type BrandFooterItem struct {
	Text    string `bson:"text" json:"text"`
	IconURL string `bson:"iconUrl,omitempty" json:"iconUrl,omitempty"`
}

// SiteSettings is the single merchant configuration document.
type SiteSettings struct {
	EnableStoreIntegration bool   `bson:"enableStoreIntegration" json:"enableStoreIntegration"`
	StoreFallbackMessage   string `bson:"storeFallbackMessage" json:"storeFallbackMessage"`
	StoreLookupLink        string `bson:"storeLookupLink" json:"storeLookupLink"`
	EnableOnlinePayment    bool   `bson:"enableOnlinePayment" json:"enableOnlinePayment"`
	BankName               string `bson:"bankName" json:"bankName"`
	BankAccount            string `bson:"bankAccount" json:"bankAccount"`
	BankAccountName        string `bson:"bankAccountName" json:"bankAccountName"`
	TelegramBotToken       string `bson:"telegramBotToken,omitempty" json:"telegramBotToken,omitempty"`
	TelegramChatID         string `bson:"telegramChatId,omitempty" json:"telegramChatId,omitempty"`
	LastUpdated            string `bson:"lastUpdated,omitempty" json:"lastUpdated,omitempty"`

	WebsiteLogo      string            `bson:"websiteLogo,omitempty" json:"websiteLogo,omitempty"`
	WebsiteFavicon   string            `bson:"websiteFavicon,omitempty" json:"websiteFavicon,omitempty"`
	BrandBannerImage string            `bson:"brandBannerImage,omitempty" json:"brandBannerImage,omitempty"`
	BrandBannerTitle string            `bson:"brandBannerTitle,omitempty" json:"brandBannerTitle,omitempty"`
	BrandFeatures    []BrandFeature    `bson:"brandFeatures,omitempty" json:"brandFeatures,omitempty"`
	BrandFooterItems []BrandFooterItem `bson:"brandFooterItems,omitempty" json:"brandFooterItems,omitempty"`
}

// TelegramConfigured reports whether both chat credentials are present.
func (s SiteSettings) TelegramConfigured() bool {
	return s.TelegramBotToken != "" && s.TelegramChatID != ""
}

// Public strips the chat credentials for anonymous readers.
func (s SiteSettings) Public() SiteSettings {
	s.TelegramBotToken = ""
	s.TelegramChatID = ""
	return s
}

func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		EnableStoreIntegration: false,
		StoreFallbackMessage:   "請使用下方連結查詢7-11門市，並將「門市名稱」與「店號」填寫於下方欄位。",
		StoreLookupLink:        "https://emap.pcsc.com.tw/",
		EnableOnlinePayment:    false,
		BankName:               "(812) 台新銀行",
		BankAccount:            "2888-1000-1234-56",
		BankAccountName:        "海鮮小劉",
	}
}
