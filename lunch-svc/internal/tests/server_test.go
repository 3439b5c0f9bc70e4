package tests

import (
	"context"
	"net/http"
	"testing"
	"time"

	httpapi "lunchtime/lunch-svc/internal/api/http"

	"github.com/stretchr/testify/assert"
)

func TestStartServer(t *testing.T) {
	tests := []struct {
		name    string
		addr    string
		cancel  bool
		wantErr bool
	}{
		{name: "stops when context ends", addr: "127.0.0.1:0", cancel: true},
		{name: "listen failure", addr: "127.0.0.1:-1", wantErr: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			done := make(chan error, 1)
			go func() {
				done <- httpapi.StartServer(ctx, testCase.addr, http.NotFoundHandler())
			}()
			if testCase.cancel {
				cancel()
			}

			select {
			case err := <-done:
				if testCase.wantErr {
					assert.Error(t, err)
				} else {
					assert.NoError(t, err)
				}
			case <-time.After(5 * time.Second):
				t.Fatal("server did not return")
			}
		})
	}
}
