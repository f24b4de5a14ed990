package cache

import (
	"testing"

	"github.com/alicebob/miniredis/v2"

	"github.com/member-portal/backend/config"
)

func TestNewRedisClient(t *testing.T) {
	mr := miniredis.RunT(t)

	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"reachable", "redis://" + mr.Addr() + "/0", false},
		{"bad scheme", "http://" + mr.Addr(), true},
		{"unreachable", "redis://127.0.0.1:1/0", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rdb, err := NewRedisClient(&config.RedisConfig{URL: tt.url})
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewRedisClient() error = %v, wantErr %v", err, tt.wantErr)
			}
			if rdb != nil {
				_ = rdb.Close()
			}
		})
	}
}
