package custom_connect

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"connectrpc.com/connect"
	"connectrpc.com/otelconnect"
	"github.com/google/uuid"
	"github.com/pdcgo/pool_service/pool_core"
)

const (
	RequestIDHeader = "X-Request-Id"
	ErrorKindHeader = "Pool-Error-Kind"
)

type DefaultInterceptor connect.HandlerOption

func NewDefaultInterceptor() (DefaultInterceptor, error) {
	otelInterceptor, err := otelconnect.NewInterceptor()
	if err != nil {
		return nil, err
	}

	return connect.WithHandlerOptions(
		connect.WithInterceptors(otelInterceptor, &poolInterceptor{}),
		connect.WithRecover(recoverHandler),
	), nil
}

type requestIDKey struct{}

func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

func recoverHandler(ctx context.Context, spec connect.Spec, header http.Header, p any) error {
	slog.ErrorContext(ctx, "handler panic",
		slog.String("procedure", spec.Procedure),
		slog.String("request_id", RequestID(ctx)),
		slog.Any("panic", p),
	)
	return connect.NewError(connect.CodeInternal, errors.New("internal error"))
}

var kindCodes = map[pool_core.ErrorKind]connect.Code{
	pool_core.KindValidation:          connect.CodeInvalidArgument,
	pool_core.KindAuthentication:      connect.CodeUnauthenticated,
	pool_core.KindAuthorization:       connect.CodePermissionDenied,
	pool_core.KindNotFound:            connect.CodeNotFound,
	pool_core.KindConflict:            connect.CodeAlreadyExists,
	pool_core.KindInsufficientBalance: connect.CodeFailedPrecondition,
	pool_core.KindNoInvestors:         connect.CodeFailedPrecondition,
}

// ToConnectError maps a service error to a connect error carrying its kind.
// Errors without a kind are hidden behind a generic message.
func ToConnectError(err error) *connect.Error {
	if err == nil {
		return nil
	}

	var cerr *connect.Error
	if errors.As(err, &cerr) {
		return cerr
	}

	kind := pool_core.KindOf(err)
	code, ok := kindCodes[kind]
	if !ok {
		cerr = connect.NewError(connect.CodeInternal, errors.New("internal error"))
	} else {
		cerr = connect.NewError(code, err)
	}

	cerr.Meta().Set(ErrorKindHeader, string(kind))
	return cerr
}

type poolInterceptor struct{}

func (i *poolInterceptor) begin(ctx context.Context, header http.Header) (context.Context, string) {
	requestID := header.Get(RequestIDHeader)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	return context.WithValue(ctx, requestIDKey{}, requestID), requestID
}

func (i *poolInterceptor) finish(ctx context.Context, procedure string, start time.Time, err error) error {
	attrs := []any{
		slog.String("procedure", procedure),
		slog.String("request_id", RequestID(ctx)),
		slog.Duration("duration", time.Since(start)),
	}

	if err == nil {
		slog.InfoContext(ctx, "request", attrs...)
		return nil
	}

	kind := pool_core.KindOf(err)
	attrs = append(attrs, slog.String("error_kind", string(kind)))
	if kind == pool_core.KindInternal {
		attrs = append(attrs, slog.String("error", err.Error()))
		slog.ErrorContext(ctx, "request", attrs...)
	} else {
		slog.WarnContext(ctx, "request", attrs...)
	}

	return ToConnectError(err)
}

// WrapUnary implements connect.Interceptor.
func (i *poolInterceptor) WrapUnary(next connect.UnaryFunc) connect.UnaryFunc {
	return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		start := time.Now()
		ctx, requestID := i.begin(ctx, req.Header())

		res, err := next(ctx, req)
		if err != nil {
			// res holds a typed nil response on failure
			return nil, i.finish(ctx, req.Spec().Procedure, start, err)
		}

		res.Header().Set(RequestIDHeader, requestID)
		return res, i.finish(ctx, req.Spec().Procedure, start, nil)
	}
}

// WrapStreamingClient implements connect.Interceptor.
func (i *poolInterceptor) WrapStreamingClient(next connect.StreamingClientFunc) connect.StreamingClientFunc {
	return next
}

// WrapStreamingHandler implements connect.Interceptor.
func (i *poolInterceptor) WrapStreamingHandler(next connect.StreamingHandlerFunc) connect.StreamingHandlerFunc {
	return func(ctx context.Context, conn connect.StreamingHandlerConn) error {
		start := time.Now()
		ctx, requestID := i.begin(ctx, conn.RequestHeader())
		conn.ResponseHeader().Set(RequestIDHeader, requestID)

		err := next(ctx, conn)
		return i.finish(ctx, conn.Spec().Procedure, start, err)
	}
}
