package utils

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const (
	defaultReadTimeout  = 60 * time.Second
	defaultWriteTimeout = defaultReadTimeout

	// The replacement process inherits the listener on fd 3 and sees this
	// env var, which tells it to reuse the socket instead of binding anew.
	gracefulEnvKey   = "TOURISMWEB_GRACEFUL"
	gracefulEnvEntry = gracefulEnvKey + "=1"
	inheritedFd      = 3
)

// Server wraps http.Server with zero-downtime shutdown and restart. SIGTERM
// drains in-flight requests; SIGUSR2 forks a replacement that takes over the
// listening socket before the old process drains.
type Server struct {
	*http.Server

	listener     net.Listener
	inherited    bool
	signalChan   chan os.Signal
	shutdownChan chan struct{}
}

// NewServer builds a Server with the given timeouts.
func NewServer(addr string, handler http.Handler, readTimeout, writeTimeout time.Duration) *Server {
	return &Server{
		Server: &http.Server{
			Addr:         addr,
			Handler:      handler,
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
		},
		inherited:    os.Getenv(gracefulEnvKey) != "",
		signalChan:   make(chan os.Signal, 1),
		shutdownChan: make(chan struct{}),
	}
}

// ListenAndServe serves plain HTTP on the configured address.
func (srv *Server) ListenAndServe() error {
	addr := srv.Addr
	if addr == "" {
		addr = ":http"
	}
	ln, err := srv.acquireListener(addr)
	if err != nil {
		return err
	}
	srv.listener = ln
	return srv.serve()
}

// ListenAndServeTLS serves HTTPS using the given certificate pair.
func (srv *Server) ListenAndServeTLS(certFile, keyFile string) error {
	addr := srv.Addr
	if addr == "" {
		addr = ":https"
	}

	cfg := &tls.Config{}
	if srv.TLSConfig != nil {
		cfg = srv.TLSConfig.Clone()
	}
	if cfg.NextProtos == nil {
		cfg.NextProtos = []string{"http/1.1"}
	}
	var err error
	cfg.Certificates = make([]tls.Certificate, 1)
	cfg.Certificates[0], err = tls.LoadX509KeyPair(certFile, keyFile)
	if err != nil {
		return err
	}

	ln, err := srv.acquireListener(addr)
	if err != nil {
		return err
	}
	srv.listener = tls.NewListener(ln, cfg)
	return srv.serve()
}

func (srv *Server) serve() error {
	go srv.handleSignals()
	err := srv.Server.Serve(srv.listener)
	// Serve returns as soon as the listener closes; block until the drain
	// completes so main does not exit with requests still in flight.
	<-srv.shutdownChan
	return err
}

func (srv *Server) acquireListener(addr string) (net.Listener, error) {
	if srv.inherited {
		ln, err := net.FileListener(os.NewFile(inheritedFd, ""))
		if err != nil {
			return nil, fmt.Errorf("inherit listener: %w", err)
		}
		return ln, nil
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen %s: %w", addr, err)
	}
	return ln, nil
}

func (srv *Server) handleSignals() {
	signal.Notify(
		srv.signalChan,
		syscall.SIGTERM,
		syscall.SIGUSR2,
	)

	for sig := range srv.signalChan {
		switch sig {
		case syscall.SIGTERM:
			Sugar.Info("SIGTERM received, draining HTTP server")
			srv.drain()
		case syscall.SIGUSR2:
			Sugar.Info("SIGUSR2 received, forking replacement process")
			pid, err := srv.forkReplacement()
			if err != nil {
				Sugar.Errorf("replacement process failed to start: %v, keeping current server", err)
				continue
			}
			Sugar.Infof("replacement process running, pid=%d, draining old server", pid)
			srv.drain()
		}
	}
}

func (srv *Server) drain() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		Sugar.Errorf("HTTP server shutdown: %v", err)
	} else {
		Sugar.Info("HTTP server drained cleanly")
	}
	close(srv.shutdownChan)
}

func (srv *Server) forkReplacement() (uintptr, error) {
	tcpLn, ok := srv.listener.(*net.TCPListener)
	if !ok {
		return 0, fmt.Errorf("listener is not *net.TCPListener")
	}
	file, err := tcpLn.File()
	if err != nil {
		return 0, fmt.Errorf("dup listener fd: %w", err)
	}

	envs := []string{}
	for _, e := range os.Environ() {
		if e != gracefulEnvEntry {
			envs = append(envs, e)
		}
	}
	envs = append(envs, gracefulEnvEntry)

	attr := &syscall.ProcAttr{
		Env:   envs,
		Files: []uintptr{os.Stdin.Fd(), os.Stdout.Fd(), os.Stderr.Fd(), file.Fd()},
	}
	pid, err := syscall.ForkExec(os.Args[0], os.Args, attr)
	if err != nil {
		return 0, fmt.Errorf("forkexec: %w", err)
	}
	return uintptr(pid), nil
}

// GraceServer serves HTTP on addr with graceful shutdown and restart.
func GraceServer(addr string, handler http.Handler) error {
	return NewServer(addr, handler, defaultReadTimeout, defaultWriteTimeout).ListenAndServe()
}

// GraceServerTLS is the TLS variant of GraceServer.
func GraceServerTLS(addr, certFile, keyFile string, handler http.Handler) error {
	return NewServer(addr, handler, defaultReadTimeout, defaultWriteTimeout).ListenAndServeTLS(certFile, keyFile)
}
