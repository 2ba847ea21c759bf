package router

import (
	"bufio"
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/remiges-tech/sankhya/wscutils"
)

// timeoutWriter wraps gin.ResponseWriter to serialize writes and track
// whether the handler has written a response. TimeoutMiddleware uses it to
// decide whether the handler's response or a timeout response goes out.
type timeoutWriter struct {
	gin.ResponseWriter
	discardWrites *atomic.Bool
	mu            sync.Mutex
	wroteHeader   bool
}

func (w *timeoutWriter) Write(b []byte) (int, error) {
	if w.discardWrites.Load() {
		return len(b), nil // Silently drop write
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.ResponseWriter.Write(b)
}

func (w *timeoutWriter) WriteHeader(code int) {
	if w.discardWrites.Load() {
		return // Silently drop
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(code)
}

func (w *timeoutWriter) WriteString(s string) (int, error) {
	if w.discardWrites.Load() {
		return len(s), nil
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.ResponseWriter.WriteString(s)
}

func (w *timeoutWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	return w.ResponseWriter.(http.Hijacker).Hijack()
}

func (w *timeoutWriter) Flush() {
	if w.discardWrites.Load() {
		return
	}
	w.ResponseWriter.(http.Flusher).Flush()
}

// Context keys for timeout, client disconnect, and panic tracking.
// TimeoutMiddleware sets these keys, and LogRequest middleware reads them
// to include timeout/disconnect/panic info in request logs.
//
// The middleware distinguishes between two context cancellation causes:
//   - CtxKeyTimedOut: our timeout fired (context.DeadlineExceeded)
//   - CtxKeyClientDisconnected: client closed connection (context.Canceled)
const (
	CtxKeyTimedOut           = "_request_timed_out"
	CtxKeyClientDisconnected = "_client_disconnected"
	CtxKeyPanicRecovered     = "_panic_recovered"
	CtxKeyPanicValue         = "_panic_value"
)

// TimeoutMiddleware returns a middleware that limits request processing time.
// If the handler does not complete within the timeout and has not written a
// response, a 504 Gateway Timeout response is sent.
//
// The response sent to the client depends on what the handler did:
//
//   - Handler writes a response, before or after the timeout: that response is used
//   - Handler exits without writing after the timeout fires: 504 Gateway Timeout
//   - Handler panics without writing: 500 Internal Server Error
//
// Timeout works correctly only when handlers honor context cancellation.
// When the timeout fires, the middleware waits for the handler to complete;
// a handler that ignores the context runs to completion and delays the
// timeout response.
//
// The handler runs in a separate goroutine so the timeout can fire
// independently. The middleware recovers panics from that goroutine and
// re-panics in the main goroutine, where gin.Recovery() can catch them, and
// wraps the ResponseWriter to serialize concurrent writes. gin.Recovery()
// must therefore be registered BEFORE this middleware:
//
//	r.Use(LogRequest(logger))     // First: logs after everything completes
//	r.Use(gin.Recovery())         // Second: catches re-panicked errors
//	r.Use(TimeoutMiddleware(...)) // Third: runs handler in goroutine
func TimeoutMiddleware(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)

		// timedOut coordinates with the panic handler: once set, the main
		// goroutine is no longer listening on panicCh.
		var timedOut atomic.Bool

		// neverDiscard is always false. All writes are allowed since the
		// middleware waits for handler completion before deciding the
		// response. Kept for the timeoutWriter interface.
		var neverDiscard atomic.Bool

		tw := &timeoutWriter{
			ResponseWriter: c.Writer,
			discardWrites:  &neverDiscard,
		}
		c.Writer = tw

		finCh := make(chan struct{}, 1)
		panicCh := make(chan any, 1)

		go func() {
			defer func() {
				if p := recover(); p != nil {
					c.Set(CtxKeyPanicRecovered, true)
					c.Set(CtxKeyPanicValue, fmt.Sprintf("%v", p))

					// Only send the panic if the timeout hasn't fired yet.
					// After timeout the main goroutine waits on finCh only.
					if !timedOut.Load() {
						panicCh <- p
					}
				}
				// Always signal completion to prevent goroutine leak
				finCh <- struct{}{}
			}()
			c.Next()
		}()

		select {
		case p := <-panicCh:
			// Re-panic in the main goroutine where gin.Recovery() can catch it.
			panic(p)

		case <-ctx.Done():
			timedOut.Store(true)

			// ctx.Err() reveals the cancellation cause: DeadlineExceeded
			// means our timeout fired, Canceled means the client closed the
			// connection or a parent context was cancelled.
			if ctx.Err() == context.DeadlineExceeded {
				c.Set(CtxKeyTimedOut, true)
			} else {
				c.Set(CtxKeyClientDisconnected, true)
			}

			// Wait for the handler. It can still write during this wait; a
			// valid response written here is used instead of 504.
			<-finCh

			if _, panicked := c.Get(CtxKeyPanicRecovered); panicked {
				// Handler panicked after the timeout. If it already wrote
				// headers, the response cannot be changed.
				tw.mu.Lock()
				handlerWrote := tw.wroteHeader
				tw.mu.Unlock()

				if !handlerWrote {
					c.AbortWithStatusJSON(http.StatusInternalServerError,
						wscutils.NewErrorResponse(defaultMsgID, defaultErrCode))
				}
				return
			}

			tw.mu.Lock()
			handlerWrote := tw.wroteHeader
			tw.mu.Unlock()

			if handlerWrote {
				// Handler completed with a response. The client waited
				// anyway and gets the real result.
				return
			}

			c.AbortWithStatusJSON(http.StatusGatewayTimeout, scenarioErrorResponse(RequestTimeout))

		case <-finCh:
			// Handler completed within timeout.
		}
	}
}
