// Package middleware содержит HTTP middleware: идентификатор запроса,
// логирование, сжатие и проверку доверенной подсети.
package middleware

import (
	"fmt"
	"net"
	"net/http"

	"go.uber.org/zap"
)

// RealIPHeader содержит адрес клиента, выставляемый прокси
const RealIPHeader = "X-Real-IP"

// TrustedSubnet представляет разобранную CIDR-подсеть для внутренних эндпоинтов
type TrustedSubnet struct {
	network *net.IPNet
}

// ParseTrustedSubnet разбирает CIDR. Пустая строка даёт nil: доступ закрыт для всех.
func ParseTrustedSubnet(cidr string) (*TrustedSubnet, error) {
	if cidr == "" {
		return nil, nil
	}
	_, network, err := net.ParseCIDR(cidr)
	if err != nil {
		return nil, fmt.Errorf("invalid trusted subnet %q: %w", cidr, err)
	}
	return &TrustedSubnet{network: network}, nil
}

// Allows проверяет, входит ли адрес в подсеть
func (s *TrustedSubnet) Allows(addr string) bool {
	if s == nil {
		return false
	}
	ip := net.ParseIP(addr)
	return ip != nil && s.network.Contains(ip)
}

func (s *TrustedSubnet) String() string {
	if s == nil {
		return ""
	}
	return s.network.String()
}

// TrustedSubnetMiddleware пропускает только запросы, у которых X-Real-IP входит в подсеть
func TrustedSubnetMiddleware(subnet *TrustedSubnet, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clientIP := r.Header.Get(RealIPHeader)
			if !subnet.Allows(clientIP) {
				logger.Warn("Access denied",
					zap.String("method", r.Method),
					zap.String("uri", r.RequestURI),
					zap.String("client_ip", clientIP),
					zap.String("trusted_subnet", subnet.String()),
					zap.String("remote_addr", r.RemoteAddr))
				http.Error(w, "Access denied", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
