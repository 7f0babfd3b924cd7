package service

//go:generate mockgen -source=stream_service.go -destination=mocks/stream_service_mock.go -package=mocks

import (
	"context"
	"strconv"

	"jigarafy/backend/pkg/jwt"
)

// StreamService issues tokens for the video-call SDK.
type StreamService interface {
	Token(ctx context.Context, userID uint) (string, error)
}

type streamService struct {
	apiSecret string
}

func NewStreamService(apiSecret string) StreamService {
	return &streamService{apiSecret: apiSecret}
}

func (s *streamService) Token(_ context.Context, userID uint) (string, error) {
	return jwt.SignStreamToken(s.apiSecret, strconv.FormatUint(uint64(userID), 10))
}
