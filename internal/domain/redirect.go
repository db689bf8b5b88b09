package domain

import (
	"net/url"
	"strings"
)

// RedirectKind вид редиректа на оплату
type RedirectKind string

const (
	// RedirectDesktop прямой переход на desktop URL платёжного шлюза
	RedirectDesktop RedirectKind = "desktop"
	// RedirectMobileWithFallback переход по мобильному deep-link с таймером
	// отката на desktop/QR URL, если deep-link не увёл пользователя в приложение
	RedirectMobileWithFallback RedirectKind = "mobile_with_fallback"
	// RedirectMobileOnly переход по мобильному deep-link без отката
	RedirectMobileOnly RedirectKind = "mobile_only"
)

// RedirectTarget resolved redirect handling for one submission attempt.
// Tagged variant resolved once per submission вместо размазанного по потоку
// user-agent sniffing'а.
type RedirectTarget struct {
	Kind            RedirectKind
	URL             string // desktop URL либо мобильный deep-link
	FallbackURL     string // заполнен только для MobileWithFallback
	FallbackDelayMs int    // задержка таймера отката на клиенте
}

// mobileAgentMarkers подстроки User-Agent мобильных браузеров
var mobileAgentMarkers = []string{"android", "iphone", "ipad", "ipod", "mobile"}

// IsMobileUserAgent грубая классификация платформы по User-Agent
func IsMobileUserAgent(userAgent string) bool {
	ua := strings.ToLower(userAgent)
	for _, marker := range mobileAgentMarkers {
		if strings.Contains(ua, marker) {
			return true
		}
	}
	return false
}

// ResolveRedirectTarget выбирает вариант редиректа для попытки оплаты.
// На desktop всегда прямой переход; на mobile - deep-link с откатом на
// desktop URL, либо только deep-link, если desktop URL шлюз не вернул
func ResolveRedirectTarget(userAgent, desktopURL, mobileURL string) RedirectTarget {
	if !IsMobileUserAgent(userAgent) || mobileURL == "" {
		return RedirectTarget{
			Kind: RedirectDesktop,
			URL:  desktopURL,
		}
	}

	if desktopURL == "" {
		return RedirectTarget{
			Kind: RedirectMobileOnly,
			URL:  mobileURL,
		}
	}

	return RedirectTarget{
		Kind:            RedirectMobileWithFallback,
		URL:             mobileURL,
		FallbackURL:     desktopURL,
		FallbackDelayMs: MobileFallbackDelayMs,
	}
}

// IsAllowedRedirectHost validates a redirect URL's hostname against an
// explicit allow-list (защита от open-redirect). Пустые URL допустимы -
// их наличие проверяется отдельно
func IsAllowedRedirectHost(rawURL string, allowedHosts []string) bool {
	if rawURL == "" {
		return true
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}

	// Кастомные схемы deep-link'ов (intent://, appscheme://) и относительные URL
	// хоста в смысле allow-list не имеют
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return true
	}

	host := strings.ToLower(parsed.Hostname())
	if host == "" {
		return false
	}

	for _, allowed := range allowedHosts {
		allowed = strings.ToLower(allowed)
		if host == allowed || strings.HasSuffix(host, "."+allowed) {
			return true
		}
	}
	return false
}
