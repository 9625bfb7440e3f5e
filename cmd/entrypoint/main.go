// Package main runs the customers server and HTTP gateway in one container.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/louisbranch/customers/internal/platform/config"
	"github.com/louisbranch/customers/internal/platform/discovery"
)

// shutdownTimeout is the grace period before forcing child exit.
const shutdownTimeout = 10 * time.Second

// supervisorEnv locates the child binaries and the addresses they share.
type supervisorEnv struct {
	BinDir   string `env:"BIN_DIR" envDefault:"/app"`
	RPCAddr  string `env:"RPC_ADDR"`
	HTTPAddr string `env:"GATEWAY_HTTP_ADDR"`
}

// childProcess describes a managed child command.
type childProcess struct {
	name string
	cmd  *exec.Cmd
}

// processExit reports a child process exit result.
type processExit struct {
	name string
	err  error
}

// childSpec is the command line of one supervised child.
type childSpec struct {
	name string
	path string
	args []string
}

// childSpecs returns the server first; the gateway waits for it to be healthy.
// Without CUSTOMERS_GATEWAY_HTTP_ADDR the gateway resolves its own address
// from the inherited PORT or its default.
func childSpecs(env supervisorEnv) []childSpec {
	env.RPCAddr = discovery.OrDefaultGRPCAddr(env.RPCAddr, discovery.ServiceCustomers)
	gatewayArgs := []string{"-rpc-addr=" + env.RPCAddr, "-wait-for-server"}
	if env.HTTPAddr != "" {
		gatewayArgs = append([]string{"-http-addr=" + env.HTTPAddr}, gatewayArgs...)
	}
	return []childSpec{
		{
			name: "customers",
			path: filepath.Join(env.BinDir, "customers"),
			args: []string{"-addr=" + env.RPCAddr},
		},
		{
			name: "gateway",
			path: filepath.Join(env.BinDir, "gateway"),
			args: gatewayArgs,
		},
	}
}

// main starts the customers server and gateway, then supervises them.
func main() {
	log.SetPrefix("[ENTRYPOINT] ")
	var env supervisorEnv
	if err := config.ParseEnv(&env); err != nil {
		config.Exitf("entrypoint: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var children []*childProcess
	for _, spec := range childSpecs(env) {
		child, err := startChild(spec.name, exec.Command(spec.path, spec.args...))
		if err != nil {
			terminateChildren(children)
			config.Exitf("failed to start %s: %v", spec.name, err)
		}
		children = append(children, child)
	}

	exitCh := make(chan processExit, len(children))
	for _, child := range children {
		go waitChild(child, exitCh)
	}

	select {
	case <-ctx.Done():
		log.Printf("shutdown signal received")
		terminateChildren(children)
		waitForChildren(exitCh, len(children), shutdownTimeout, children)
		return
	case exit := <-exitCh:
		log.Printf("%s exited: %v", exit.name, exit.err)
		terminateChildren(children)
		waitForChildren(exitCh, len(children)-1, shutdownTimeout, children)
		if exit.err == nil {
			os.Exit(0)
		}
		config.ExitCodef(exitCode(exit.err), "%s exited: %v", exit.name, exit.err)
	}
}

// startChild starts a child process with inherited stdio streams.
func startChild(name string, cmd *exec.Cmd) (*childProcess, error) {
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", name, err)
	}
	return &childProcess{name: name, cmd: cmd}, nil
}

// waitChild waits for a child process and reports its exit.
func waitChild(child *childProcess, exitCh chan<- processExit) {
	err := child.cmd.Wait()
	exitCh <- processExit{name: child.name, err: err}
}

// terminateChildren sends SIGTERM to all child processes.
func terminateChildren(children []*childProcess) {
	for _, child := range children {
		if child == nil || child.cmd == nil || child.cmd.Process == nil {
			continue
		}
		_ = child.cmd.Process.Signal(syscall.SIGTERM)
	}
}

// waitForChildren waits for the remaining exits or forces shutdown.
func waitForChildren(exitCh <-chan processExit, remaining int, timeout time.Duration, children []*childProcess) {
	if remaining <= 0 {
		return
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for remaining > 0 {
		select {
		case <-exitCh:
			remaining--
		case <-timer.C:
			forceKill(children)
			return
		}
	}
}

// forceKill sends SIGKILL to any child still running.
func forceKill(children []*childProcess) {
	for _, child := range children {
		if child == nil || child.cmd == nil || child.cmd.Process == nil {
			continue
		}
		if child.cmd.ProcessState != nil {
			continue
		}
		_ = child.cmd.Process.Kill()
	}
}

// exitCode derives a process exit code from a wait error.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return 1
}
