package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type clientDataKey struct{}

// ClientData identifies the authenticated API client for a request.
type ClientData struct {
	ClientID uuid.UUID
	Name     string
}

func WithClientData(ctx context.Context, cd *ClientData) context.Context {
	return context.WithValue(ctx, clientDataKey{}, cd)
}

func GetClientData(ctx context.Context) *ClientData {
	if ctx == nil {
		return nil
	}
	if cd, ok := ctx.Value(clientDataKey{}).(*ClientData); ok {
		return cd
	}
	return nil
}
