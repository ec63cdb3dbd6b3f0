package printer

import (
	"io"
	"net"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Printer receives finished tickets.
type Printer interface {
	// Print sends one ticket.
	Print(data []byte) error
	// Close releases the device.
	Close() error
	// IsConnected reports whether the device is reachable.
	IsConnected() bool
}

// Printer types accepted by New
const (
	TypeUSB     = "usb"
	TypeNetwork = "network"
	TypeStdout  = "stdout"
	TypeNone    = "none"
)

// Config selects and addresses a printer.
type Config struct {
	Type    string
	USBPath string    // device file, e.g. /dev/usb/lp0
	Address string    // host:port, e.g. 192.168.1.100:9100
	Out     io.Writer // TypeStdout destination, os.Stdout when nil
}

// New creates the Printer described by cfg. An empty type means TypeNone.
func New(cfg Config) (Printer, error) {
	switch cfg.Type {
	case TypeUSB:
		if cfg.USBPath == "" {
			return nil, errors.New("printer: USB path is required for USB printer type")
		}
		return NewDevicePrinter(cfg.USBPath), nil
	case TypeNetwork:
		if cfg.Address == "" {
			return nil, errors.New("printer: address is required for network printer type")
		}
		return NewNetworkPrinter(cfg.Address), nil
	case TypeStdout:
		out := cfg.Out
		if out == nil {
			out = os.Stdout
		}
		return NewWriterPrinter(out), nil
	case TypeNone, "":
		return NewNullPrinter(), nil
	default:
		return nil, errors.Errorf("printer: unknown printer type %q (use usb, network, stdout, or none)", cfg.Type)
	}
}

// devicePrinter writes each ticket to a character device, opened per job.
type devicePrinter struct {
	path string
}

// NewDevicePrinter creates a printer bound to a device file.
func NewDevicePrinter(path string) Printer {
	return &devicePrinter{path: path}
}

func (p *devicePrinter) Print(data []byte) error {
	f, err := os.OpenFile(p.path, os.O_WRONLY, 0)
	if err != nil {
		return errors.Wrapf(err, "printer: open %s", p.path)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return errors.Wrapf(err, "printer: write %s", p.path)
	}
	return nil
}

func (p *devicePrinter) Close() error { return nil }

func (p *devicePrinter) IsConnected() bool {
	_, err := os.Stat(p.path)
	return err == nil
}

// networkPrinter sends each ticket over a fresh TCP connection (raw port 9100).
type networkPrinter struct {
	address      string
	dialTimeout  time.Duration
	writeTimeout time.Duration
}

// NewNetworkPrinter creates a printer reached at address (host:port).
func NewNetworkPrinter(address string) Printer {
	return &networkPrinter{
		address:      address,
		dialTimeout:  5 * time.Second,
		writeTimeout: 10 * time.Second,
	}
}

func (p *networkPrinter) Print(data []byte) error {
	conn, err := net.DialTimeout("tcp", p.address, p.dialTimeout)
	if err != nil {
		return errors.Wrapf(err, "printer: connect %s", p.address)
	}
	defer conn.Close()

	if err := conn.SetWriteDeadline(time.Now().Add(p.writeTimeout)); err != nil {
		return errors.Wrapf(err, "printer: deadline %s", p.address)
	}
	if _, err := conn.Write(data); err != nil {
		return errors.Wrapf(err, "printer: write %s", p.address)
	}
	return nil
}

func (p *networkPrinter) Close() error { return nil }

func (p *networkPrinter) IsConnected() bool {
	conn, err := net.DialTimeout("tcp", p.address, p.dialTimeout)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

// writerPrinter copies tickets to a writer owned by the caller.
type writerPrinter struct {
	w io.Writer
}

// NewWriterPrinter creates a printer that copies every ticket to w.
func NewWriterPrinter(w io.Writer) Printer {
	return &writerPrinter{w: w}
}

func (p *writerPrinter) Print(data []byte) error {
	if _, err := p.w.Write(data); err != nil {
		return errors.Wrap(err, "printer: write ticket")
	}
	return nil
}

func (p *writerPrinter) Close() error { return nil }

func (p *writerPrinter) IsConnected() bool { return p.w != nil }

type nullPrinter struct{}

// NewNullPrinter creates a printer that discards every ticket.
func NewNullPrinter() Printer {
	return nullPrinter{}
}

func (nullPrinter) Print([]byte) error { return nil }

func (nullPrinter) Close() error { return nil }

func (nullPrinter) IsConnected() bool { return false }
