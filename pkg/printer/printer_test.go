package printer

import (
	"bytes"
	"io"
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("stdout writes to the given writer", func(t *testing.T) {
		var out bytes.Buffer
		p, err := New(Config{Type: TypeStdout, Out: &out})
		require.NoError(t, err)

		require.NoError(t, p.Print([]byte("ticket")))
		assert.Equal(t, "ticket", out.String())
		assert.True(t, p.IsConnected())
		assert.NoError(t, p.Close())
	})

	t.Run("none and empty are no-ops", func(t *testing.T) {
		for _, typ := range []string{TypeNone, ""} {
			p, err := New(Config{Type: typ})
			require.NoError(t, err)
			assert.NoError(t, p.Print([]byte("ticket")))
			assert.False(t, p.IsConnected())
		}
	})

	t.Run("usb requires a path", func(t *testing.T) {
		_, err := New(Config{Type: TypeUSB})
		assert.ErrorContains(t, err, "USB path is required")
	})

	t.Run("network requires an address", func(t *testing.T) {
		_, err := New(Config{Type: TypeNetwork})
		assert.ErrorContains(t, err, "address is required")
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := New(Config{Type: "fax"})
		assert.ErrorContains(t, err, "unknown printer type")
	})
}

func TestDevicePrinter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lp0")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	p := NewDevicePrinter(path)
	assert.True(t, p.IsConnected())
	require.NoError(t, p.Print([]byte("ticket")))

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ticket", string(written))

	missing := NewDevicePrinter(filepath.Join(t.TempDir(), "absent"))
	assert.False(t, missing.IsConnected())
	assert.ErrorContains(t, missing.Print([]byte("ticket")), "printer: open")
}

func TestNetworkPrinter(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	received := make(chan []byte, 1)
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			data, _ := io.ReadAll(conn)
			conn.Close()
			if len(data) > 0 {
				received <- data
			}
		}
	}()

	p := NewNetworkPrinter(ln.Addr().String())
	assert.True(t, p.IsConnected())
	require.NoError(t, p.Print([]byte("ticket")))
	assert.Equal(t, "ticket", string(<-received))
}
