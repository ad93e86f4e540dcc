package server

import (
	"context"
	"errors"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freePort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port
}

func TestNewGracefulServer_Defaults(t *testing.T) {
	gs := NewGracefulServer(echo.New(), nil, 8080, 0)

	require.NotNil(t, gs)
	assert.NotNil(t, gs.logger)
	assert.Equal(t, defaultShutdownTimeout, gs.shutdownTimeout)
}

func TestGracefulServer_RunStopsOnContextCancel(t *testing.T) {
	e := echo.New()
	e.HideBanner = true
	gs := NewGracefulServer(e, nil, freePort(t), time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- gs.Run(ctx)
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestShutdownManager_Shutdown(t *testing.T) {
	t.Run("runs in reverse order", func(t *testing.T) {
		sm := NewShutdownManager(nil)
		var order []int
		for i := 0; i < 3; i++ {
			i := i
			sm.Register(func(ctx context.Context) error {
				order = append(order, i)
				return nil
			})
		}

		require.NoError(t, sm.Shutdown(context.Background()))
		assert.Equal(t, []int{2, 1, 0}, order)
	})

	t.Run("continues after failure and returns first error", func(t *testing.T) {
		sm := NewShutdownManager(nil)
		errDB := errors.New("db close failed")
		errNATS := errors.New("nats drain failed")
		called := 0

		sm.Register(func(ctx context.Context) error { called++; return errDB })
		sm.Register(func(ctx context.Context) error { called++; return errNATS })
		sm.Register(func(ctx context.Context) error { called++; return nil })

		err := sm.Shutdown(context.Background())
		assert.Equal(t, 3, called)
		assert.ErrorIs(t, err, errNATS)
	})

	t.Run("no components", func(t *testing.T) {
		assert.NoError(t, NewShutdownManager(nil).Shutdown(context.Background()))
	})
}

func TestShutdownManager_ConcurrentRegister(t *testing.T) {
	sm := NewShutdownManager(nil)
	var wg sync.WaitGroup
	var mu sync.Mutex
	count := 0

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sm.Register(func(ctx context.Context) error {
				mu.Lock()
				count++
				mu.Unlock()
				return nil
			})
		}()
	}
	wg.Wait()

	require.NoError(t, sm.Shutdown(context.Background()))
	assert.Equal(t, 50, count)
}
