package i18n

import "strings"

// DefaultLocale 默认语言
const DefaultLocale = "en-US"

var supported = map[string]bool{
	"en-US": true,
	"hi-IN": true,
}

var messages = map[string]map[string]string{
	"en-US": {
		"error.bad_request":           "invalid request",
		"error.unauthorized":          "unauthorized",
		"error.forbidden":             "permission denied",
		"error.not_found":             "resource not found",
		"error.too_many_requests":     "too many requests, please retry later",
		"error.internal":              "internal server error",
		"error.user_id_invalid":       "invalid user identity",
		"error.user_id_type_invalid":  "invalid user identity",
		"error.admin_id_invalid":      "invalid admin identity",
		"error.admin_id_type_invalid": "invalid admin identity",
		"product.not_found":           "product not found",
		"product.out_of_stock":        "product is out of stock",
		"product.invalid":             "invalid product data",
		"product.conflict":            "product identifier conflict, please retry",
		"product.in_stock":            "product is already in stock",
		"coupon.not_found":            "coupon not found",
		"coupon.inactive":             "coupon is not active",
		"coupon.expired":              "coupon has expired",
		"coupon.not_started":          "coupon is not yet valid",
		"coupon.exhausted":            "coupon usage limit reached",
		"coupon.min_amount":           "order amount below coupon minimum",
		"coupon.invalid":              "coupon is invalid",
		"coupon.code_exists":          "coupon code already exists",
		"order.not_found":             "order not found",
		"order.empty_cart":            "cart is empty",
		"order.invalid_item":          "invalid order item",
		"order.status_change":         "order status change not allowed",
		"auth.invalid_credentials":    "invalid email or password",
		"auth.email_exists":           "email already registered",
		"auth.token_invalid":          "invalid or expired token",
		"auth.token_revoked":          "token has been revoked, please login again",
		"auth.weak_password":          "password does not meet the strength requirements",
		"auth.password_wrong":         "current password is incorrect",
		"auth.user_disabled":          "account is disabled",
		"user.not_found":              "user not found",
		"inquiry.received":            "inquiry received, we will get back to you soon",
		"inquiry.message_required":    "inquiry message is required",
		"inquiry.not_found":           "inquiry not found",
		"stock_notify.subscribed":     "you will be notified when this item is back in stock",
		"stock_notify.duplicate":      "you are already subscribed for this item",
		"stock_notify.phone_required": "phone number is required",
	},
	"hi-IN": {
		"error.bad_request":           "अमान्य अनुरोध",
		"error.unauthorized":          "अनधिकृत",
		"error.forbidden":             "अनुमति नहीं है",
		"error.not_found":             "संसाधन नहीं मिला",
		"error.too_many_requests":     "बहुत अधिक अनुरोध, बाद में पुनः प्रयास करें",
		"error.internal":              "आंतरिक सर्वर त्रुटि",
		"error.user_id_invalid":       "अमान्य उपयोगकर्ता पहचान",
		"error.user_id_type_invalid":  "अमान्य उपयोगकर्ता पहचान",
		"error.admin_id_invalid":      "अमान्य व्यवस्थापक पहचान",
		"error.admin_id_type_invalid": "अमान्य व्यवस्थापक पहचान",
		"product.not_found":           "उत्पाद नहीं मिला",
		"product.out_of_stock":        "उत्पाद स्टॉक में नहीं है",
		"product.invalid":             "अमान्य उत्पाद विवरण",
		"product.conflict":            "उत्पाद पहचानकर्ता टकराव, पुनः प्रयास करें",
		"product.in_stock":            "उत्पाद पहले से स्टॉक में है",
		"coupon.not_found":            "कूपन नहीं मिला",
		"coupon.inactive":             "कूपन सक्रिय नहीं है",
		"coupon.expired":              "कूपन की अवधि समाप्त हो गई है",
		"coupon.not_started":          "कूपन अभी मान्य नहीं है",
		"coupon.exhausted":            "कूपन उपयोग सीमा समाप्त",
		"coupon.min_amount":           "ऑर्डर राशि कूपन की न्यूनतम सीमा से कम है",
		"coupon.invalid":              "कूपन अमान्य है",
		"coupon.code_exists":          "कूपन कोड पहले से मौजूद है",
		"order.not_found":             "ऑर्डर नहीं मिला",
		"order.empty_cart":            "कार्ट खाली है",
		"order.invalid_item":          "अमान्य ऑर्डर आइटम",
		"order.status_change":         "ऑर्डर स्थिति परिवर्तन की अनुमति नहीं है",
		"auth.invalid_credentials":    "अमान्य ईमेल या पासवर्ड",
		"auth.email_exists":           "ईमेल पहले से पंजीकृत है",
		"auth.token_invalid":          "अमान्य या समाप्त टोकन",
		"auth.token_revoked":          "टोकन रद्द कर दिया गया है, कृपया फिर से लॉगिन करें",
		"auth.weak_password":          "पासवर्ड आवश्यक मजबूती मानकों को पूरा नहीं करता",
		"auth.password_wrong":         "वर्तमान पासवर्ड गलत है",
		"auth.user_disabled":          "खाता अक्षम है",
		"user.not_found":              "उपयोगकर्ता नहीं मिला",
		"inquiry.received":            "पूछताछ प्राप्त हुई, हम जल्द ही आपसे संपर्क करेंगे",
		"inquiry.message_required":    "पूछताछ संदेश आवश्यक है",
		"inquiry.not_found":           "पूछताछ नहीं मिली",
		"stock_notify.subscribed":     "वस्तु स्टॉक में आने पर आपको सूचित किया जाएगा",
		"stock_notify.duplicate":      "आप इस वस्तु के लिए पहले से सदस्यता ले चुके हैं",
		"stock_notify.phone_required": "फ़ोन नंबर आवश्यक है",
	},
}

// ResolveLocale 解析语言标签，不支持的回落到默认语言。
// 接受 Accept-Language 风格的列表，取第一个支持的标签。
func ResolveLocale(raw string) string {
	for _, part := range strings.Split(raw, ",") {
		tag := strings.TrimSpace(part)
		if i := strings.IndexByte(tag, ';'); i >= 0 {
			tag = tag[:i]
		}
		if supported[tag] {
			return tag
		}
		// hi -> hi-IN 这类短标签
		for full := range supported {
			if strings.HasPrefix(full, tag+"-") {
				return full
			}
		}
	}
	return DefaultLocale
}

// T 取指定语言的文案，缺失时回落到默认语言，再缺失返回 key 本身。
func T(locale, key string) string {
	if m, ok := messages[locale]; ok {
		if msg, ok := m[key]; ok {
			return msg
		}
	}
	if msg, ok := messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}
