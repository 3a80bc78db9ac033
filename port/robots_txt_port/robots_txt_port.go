package robots_txt_port

import "context"

//go:generate go run go.uber.org/mock/mockgen -source=robots_txt_port.go -destination=../../mocks/mock_robots_txt_port.go -package=mocks

// RobotsTxtPort answers whether our crawler may request a URL.
type RobotsTxtPort interface {
	IsAllowed(ctx context.Context, targetURL string) bool
}
