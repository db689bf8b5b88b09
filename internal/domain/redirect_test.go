package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	desktopUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	mobileUA  = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) Mobile/15E148"
)

func TestResolveRedirectTarget(t *testing.T) {
	desktop := "https://pay.example.com/ready/abc"
	mobile := "appscheme://pay?tid=abc"

	t.Run("desktop user agent", func(t *testing.T) {
		target := ResolveRedirectTarget(desktopUA, desktop, mobile)
		assert.Equal(t, RedirectDesktop, target.Kind)
		assert.Equal(t, desktop, target.URL)
		assert.Empty(t, target.FallbackURL)
	})

	t.Run("mobile with fallback", func(t *testing.T) {
		target := ResolveRedirectTarget(mobileUA, desktop, mobile)
		assert.Equal(t, RedirectMobileWithFallback, target.Kind)
		assert.Equal(t, mobile, target.URL)
		assert.Equal(t, desktop, target.FallbackURL)
		assert.Equal(t, MobileFallbackDelayMs, target.FallbackDelayMs)
	})

	t.Run("mobile without desktop url", func(t *testing.T) {
		target := ResolveRedirectTarget(mobileUA, "", mobile)
		assert.Equal(t, RedirectMobileOnly, target.Kind)
		assert.Equal(t, mobile, target.URL)
	})

	t.Run("mobile ua without mobile url falls back to desktop", func(t *testing.T) {
		target := ResolveRedirectTarget(mobileUA, desktop, "")
		assert.Equal(t, RedirectDesktop, target.Kind)
	})
}

func TestIsAllowedRedirectHost(t *testing.T) {
	allowed := []string{"pay.example.com", "payments.io"}

	tests := []struct {
		name string
		url  string
		want bool
	}{
		{"точное совпадение хоста", "https://pay.example.com/ready", true},
		{"поддомен разрешённого хоста", "https://m.payments.io/qr", true},
		{"чужой хост", "https://evil.com/phish", false},
		{"чужой хост с разрешённым в пути", "https://evil.com/pay.example.com", false},
		{"deep-link с кастомной схемой", "appscheme://pay?tid=1", true},
		{"пустой URL допустим", "", true},
		{"http на чужой хост", "http://attacker.example.net", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAllowedRedirectHost(tt.url, allowed))
		})
	}
}
