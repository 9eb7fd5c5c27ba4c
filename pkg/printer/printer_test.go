package printer

import (
	"bytes"
	"errors"
	"io"
	"net"
	"testing"
	"time"
)

func TestNetworkPrinterWritesAllBytes(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()

	received := make(chan []byte, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			received <- nil
			return
		}
		defer conn.Close()
		data, _ := io.ReadAll(conn)
		received <- data
	}()

	p := NewNetworkPrinter(ln.Addr().String(), 2*time.Second)
	want := []byte{ESC, '@', 'h', 'e', 'l', 'l', 'o', GS, 'V', 0x00}
	if err := p.Print(want); err != nil {
		t.Fatalf("Print: %v", err)
	}

	select {
	case got := <-received:
		if !bytes.Equal(got, want) {
			t.Errorf("printer received %v, want %v", got, want)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("printer never received data")
	}
}

func TestNetworkPrinterRefusedConnection(t *testing.T) {
	// Grab a port that is guaranteed closed by listening and releasing it.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := ln.Addr().String()
	ln.Close()

	p := NewNetworkPrinter(addr, time.Second)
	err = p.Print([]byte("ticket"))
	if err == nil {
		t.Fatal("expected an error printing to a closed port")
	}

	var unreachable *UnreachableError
	if !errors.As(err, &unreachable) {
		t.Errorf("expected *UnreachableError, got %T: %v", err, err)
	}
	if unreachable != nil && unreachable.Addr != addr {
		t.Errorf("error does not carry the address: %v", err)
	}
}

func TestNetworkPrinterBoundedFailure(t *testing.T) {
	// 10.255.255.1 is unroutable from typical networks; depending on the
	// environment the dial either times out or is reported unreachable.
	// Either way the call must return a classified error within the bound.
	const timeout = 500 * time.Millisecond
	p := NewNetworkPrinter("10.255.255.1:9100", timeout)

	start := time.Now()
	err := p.Print([]byte("ticket"))
	elapsed := time.Since(start)

	if err == nil {
		t.Skip("environment routes 10.255.255.1, cannot test")
	}
	if elapsed > timeout+2*time.Second {
		t.Errorf("failure took %v, bound was %v", elapsed, timeout)
	}

	var timeoutErr *TimeoutError
	var unreachableErr *UnreachableError
	if !errors.As(err, &timeoutErr) && !errors.As(err, &unreachableErr) {
		t.Errorf("expected a typed transport error, got %T: %v", err, err)
	}
}

func TestTimeoutErrorCarriesContext(t *testing.T) {
	cause := errors.New("i/o timeout")
	err := &TimeoutError{Addr: "192.168.2.218:9100", Err: cause}
	if !errors.Is(err, cause) {
		t.Error("TimeoutError does not unwrap to its cause")
	}
	if err.Error() == "" || err.Addr != "192.168.2.218:9100" {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestNullPrinter(t *testing.T) {
	p := NewNullPrinter()
	if err := p.Print([]byte("anything")); err != nil {
		t.Errorf("null printer returned %v", err)
	}
	if p.IsConnected() {
		t.Error("null printer reports connected")
	}
}

func TestNewPrinterFromConfig(t *testing.T) {
	tests := []struct {
		name        string
		printerType string
		usbPath     string
		address     string
		wantErr     bool
	}{
		{"network", "network", "", "127.0.0.1:9100", false},
		{"network without address", "network", "", "", true},
		{"usb", "usb", "/dev/usb/lp0", "", false},
		{"usb without path", "usb", "", "", true},
		{"none", "none", "", "", false},
		{"empty defaults to none", "", "", "", false},
		{"unknown", "serial", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPrinterFromConfig(tt.printerType, tt.usbPath, tt.address, 0)
			if (err != nil) != tt.wantErr {
				t.Errorf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && p == nil {
				t.Error("returned nil printer without error")
			}
		})
	}
}
