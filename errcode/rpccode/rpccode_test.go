package rpccode_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"codeberg.org/mutker/errcode/errcode/rpccode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
)

func TestZeroValue(t *testing.T) {
	var c rpccode.Code

	assert.Equal(t, 0, c.Value())
	assert.False(t, c.Failed())
	assert.Equal(t, "grpc", c.CategoryName())
	assert.Equal(t, "ok", c.Message())
	assert.Equal(t, codes.OK, c.DefaultCondition())
	assert.True(t, c.Equal(rpccode.FromEnum(rpccode.Canonical(codes.OK))))
	assert.NoError(t, c.Err())
}

func TestStatusCategory(t *testing.T) {
	cat := rpccode.StatusCategory()

	assert.Equal(t, "not found", cat.Message(int(codes.NotFound)))
	assert.Equal(t, "unknown status 99", cat.Message(99))
	assert.Equal(t, codes.NotFound, cat.DefaultCondition(int(codes.NotFound)))
	assert.Equal(t, codes.Unknown, cat.DefaultCondition(99))
	assert.Equal(t, codes.Unknown, cat.DefaultCondition(-1))
}

func TestHTTPCategory(t *testing.T) {
	tests := []struct {
		status int
		want   codes.Code
	}{
		{0, codes.OK},
		{http.StatusOK, codes.OK},
		{http.StatusNoContent, codes.OK},
		{http.StatusBadRequest, codes.InvalidArgument},
		{http.StatusUnauthorized, codes.Unauthenticated},
		{http.StatusForbidden, codes.PermissionDenied},
		{http.StatusNotFound, codes.NotFound},
		{http.StatusConflict, codes.AlreadyExists},
		{http.StatusTooManyRequests, codes.ResourceExhausted},
		{499, codes.Canceled},
		{http.StatusNotImplemented, codes.Unimplemented},
		{http.StatusServiceUnavailable, codes.Unavailable},
		{http.StatusGatewayTimeout, codes.DeadlineExceeded},
		{http.StatusInsufficientStorage, codes.Internal},
		{http.StatusTeapot, codes.Unknown},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			c := rpccode.New(tt.status, rpccode.HTTPCategory())
			assert.Equal(t, tt.want, c.DefaultCondition())
			assert.True(t, c.MatchesCondition(tt.want))
		})
	}

	assert.Equal(t, "Not Found", rpccode.HTTPCategory().Message(http.StatusNotFound))
	assert.Equal(t, "HTTP status 799", rpccode.HTTPCategory().Message(799))
}

func TestEqualAcrossCategories(t *testing.T) {
	grpcNotFound := rpccode.NewWithMessage(int(codes.NotFound), rpccode.StatusCategory(), "user 7")
	httpNotFound := rpccode.New(http.StatusNotFound, rpccode.HTTPCategory())

	assert.False(t, grpcNotFound.Equal(httpNotFound))
	assert.True(t, grpcNotFound.MatchesEnum(rpccode.Canonical(codes.NotFound)))
	assert.True(t, httpNotFound.MatchesEnum(rpccode.Canonical(codes.NotFound)))
	assert.True(t, grpcNotFound.Less(httpNotFound), "grpc sorts before http")
	assert.NotEqual(t, grpcNotFound.Hash(), httpNotFound.Hash())
}

func TestEqualIgnoresMessage(t *testing.T) {
	a := rpccode.FromStatus(codes.Unavailable, "db down")
	b := rpccode.FromStatus(codes.Unavailable, "cache down")

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())
	assert.Equal(t, a.Key(), b.Key())
}

func TestSystemError(t *testing.T) {
	c := rpccode.NewWithMessage(int(codes.NotFound), rpccode.StatusCategory(), "lookup user")
	err := rpccode.NewSystemError(c)

	assert.Equal(t, "rpc error: code = NotFound desc = lookup user: not found", err.Error())
	assert.Equal(t, codes.NotFound, status.Code(err))

	withPrefix := rpccode.NewSystemErrorWithMessage(c, "prefix: ")
	assert.Equal(t, "prefix: lookup user", withPrefix.Error())
	assert.NotContains(t, withPrefix.Error(), "not found")
}

func TestSystemErrorOK(t *testing.T) {
	err := rpccode.NewSystemError(rpccode.Code{})

	assert.Equal(t, "rpc error: code = OK desc = ok", err.Error())

	var native *rpccode.Error
	require.ErrorAs(t, err, &native)
	assert.Empty(t, native.GRPCStatus().Details())
}

func TestNativeErrorDetails(t *testing.T) {
	c := rpccode.NewWithMessage(http.StatusConflict, rpccode.HTTPCategory(), "duplicate name")

	var native *rpccode.Error
	require.ErrorAs(t, c.Err(), &native)

	st := native.GRPCStatus()
	assert.Equal(t, codes.AlreadyExists, st.Code())
	require.Len(t, st.Details(), 1)

	want := &errdetails.ErrorInfo{
		Reason: "http",
		Domain: rpccode.ErrorInfoDomain,
		Metadata: map[string]string{
			"category": "http",
			"value":    "409",
			"message":  "duplicate name",
		},
	}
	got, ok := st.Details()[0].(*errdetails.ErrorInfo)
	require.True(t, ok)
	assert.True(t, proto.Equal(want, got), "got %v", got)
}

func TestFromError(t *testing.T) {
	httpConflict := rpccode.NewWithMessage(http.StatusConflict, rpccode.HTTPCategory(), "duplicate name")

	var native *rpccode.Error
	require.ErrorAs(t, httpConflict.Err(), &native)

	// A status that crossed the wire keeps its details but not the Go type.
	wire := status.FromProto(native.GRPCStatus().Proto()).Err()

	tests := []struct {
		name    string
		err     error
		want    rpccode.ErrorCode
		message string
	}{
		{
			name: "nil",
			err:  nil,
			want: rpccode.ErrorCode{},
		},
		{
			name:    "system error",
			err:     fmt.Errorf("create: %w", httpConflict.Err()),
			want:    httpConflict.ID(),
			message: "duplicate name",
		},
		{
			name:    "native error",
			err:     native,
			want:    httpConflict.ID(),
			message: "duplicate name",
		},
		{
			name:    "status with identity",
			err:     wire,
			want:    httpConflict.ID(),
			message: "duplicate name",
		},
		{
			name:    "wrapped status with identity",
			err:     fmt.Errorf("call: %w", wire),
			want:    httpConflict.ID(),
			message: "duplicate name",
		},
		{
			name:    "plain status",
			err:     status.Error(codes.PermissionDenied, "no access"),
			want:    rpccode.FromStatusCode(codes.PermissionDenied),
			message: "no access",
		},
		{
			name:    "context",
			err:     fmt.Errorf("wait: %w", context.DeadlineExceeded),
			want:    rpccode.FromStatusCode(codes.DeadlineExceeded),
			message: "wait: context deadline exceeded",
		},
		{
			name:    "anything else",
			err:     errors.New("boom"),
			want:    rpccode.FromStatusCode(codes.Unknown),
			message: "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := rpccode.FromError(tt.err)
			assert.True(t, c.EqualID(tt.want), "got %s, want %s", c, tt.want)
			assert.Equal(t, tt.message, c.What())
		})
	}
}

func TestCanonical(t *testing.T) {
	e := rpccode.Canonical(codes.ResourceExhausted)

	assert.Equal(t, "ResourceExhausted", e.String())
	assert.True(t, rpccode.FromEnum(e).EqualID(rpccode.FromStatusCode(codes.ResourceExhausted)))
	assert.Equal(t, codes.ResourceExhausted, e.ErrorCondition())
}

func TestParseCanonical(t *testing.T) {
	c, ok := rpccode.ParseCanonical("NOT_FOUND")
	require.True(t, ok)
	assert.Equal(t, rpccode.Canonical(codes.NotFound), c)

	_, ok = rpccode.ParseCanonical("NotFound")
	assert.False(t, ok)
}

// statusCarrier exposes a status the way a gRPC client error does, without
// being one of this package's types.
type statusCarrier struct{ st *status.Status }

func (e statusCarrier) Error() string { return e.st.Message() }

func (e statusCarrier) GRPCStatus() *status.Status { return e.st }

func TestNativeErrorDetailsForOKCondition(t *testing.T) {
	c := rpccode.NewWithMessage(http.StatusNoContent, rpccode.HTTPCategory(), "deleted")
	require.True(t, c.Failed())

	var native *rpccode.Error
	require.ErrorAs(t, c.Err(), &native)

	st := native.GRPCStatus()
	assert.Equal(t, codes.OK, st.Code())
	require.Len(t, st.Details(), 1)

	// Rebuild the status from its proto, as the far end of a call would.
	remote := statusCarrier{st: status.FromProto(st.Proto())}
	got := rpccode.FromError(remote)
	assert.True(t, got.Equal(c), "got %s", got)
	assert.Equal(t, "deleted", got.What())
}

// lookalikeCategory shares its name with the HTTP category.
type lookalikeCategory struct{}

func (*lookalikeCategory) Name() string { return "http" }

func (*lookalikeCategory) Message(int) string { return "lookalike" }

func (*lookalikeCategory) DefaultCondition(int) codes.Code { return codes.Unknown }

func TestSameNamedCategoriesDiffer(t *testing.T) {
	fake := &lookalikeCategory{}
	a := rpccode.New(http.StatusNotFound, fake)
	b := rpccode.New(http.StatusNotFound, rpccode.HTTPCategory())

	assert.False(t, a.Equal(b))
	assert.NotZero(t, a.Compare(b))
	assert.Equal(t, -a.Compare(b), b.Compare(a))
	assert.Equal(t, "lookalike", a.Message())
	assert.Equal(t, "Not Found", b.Message())
	assert.True(t, a.Equal(rpccode.NewWithMessage(http.StatusNotFound, fake, "x")))
}
