package errcode_test

import (
	"slices"
	"syscall"
	"testing"

	"codeberg.org/mutker/errcode/errcode"
	"codeberg.org/mutker/errcode/errcode/syscode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	generic = syscode.GenericCategory()
	system  = syscode.SystemCategory()
)

func TestZeroValue(t *testing.T) {
	var c syscode.Code

	assert.Equal(t, 0, c.Value())
	assert.False(t, c.Failed())
	assert.True(t, c.OK())
	assert.Equal(t, "system", c.CategoryName())
	assert.Empty(t, c.What())
	assert.Equal(t, "success", c.Message())
	assert.True(t, c.Equal(syscode.New(0, system)))
	assert.NoError(t, c.Err())
}

func TestFailedIgnoresMessage(t *testing.T) {
	c := syscode.NewWithMessage(0, generic, "nothing went wrong")
	assert.False(t, c.Failed())
	assert.NoError(t, c.Err())

	c = syscode.New(int(syscall.EIO), generic)
	assert.True(t, c.Failed())
	assert.False(t, c.OK())
}

func TestEqualIgnoresMessage(t *testing.T) {
	a := syscode.NewWithMessage(int(syscall.ENOSPC), system, "disk full")
	b := syscode.NewWithMessage(int(syscall.ENOSPC), system, "quota exceeded")

	assert.True(t, a.Equal(b))
	assert.Zero(t, a.Compare(b))
	assert.Equal(t, a.Hash(), b.Hash())
	assert.Equal(t, a.Key(), b.Key())

	other := syscode.New(int(syscall.ENOSPC), generic)
	assert.False(t, a.Equal(other))
	assert.NotEqual(t, a.Hash(), other.Hash())
}

func TestEqualID(t *testing.T) {
	c := syscode.FromEnumWithMessage(syscode.PermissionDenied, "write journal")

	assert.True(t, c.EqualID(syscode.PermissionDenied.ErrorCode()))
	assert.True(t, c.EqualID(syscode.MakeErrorCode(int(syscall.EACCES), generic)))
	assert.False(t, c.EqualID(syscode.MakeErrorCode(int(syscall.EACCES), system)))
}

func TestZeroValueNormalised(t *testing.T) {
	var zero syscode.Code
	explicit := syscode.From(syscode.MakeErrorCode(0, system))

	assert.True(t, zero.Equal(explicit))
	assert.Equal(t, zero.Hash(), explicit.Hash())
	assert.Equal(t, zero.Key(), explicit.Key())

	seen := map[syscode.ErrorCode]int{}
	seen[zero.Key()]++
	seen[explicit.Key()]++
	assert.Len(t, seen, 1)
}

func TestMessage(t *testing.T) {
	t.Run("attached", func(t *testing.T) {
		c := syscode.NewWithMessage(int(syscall.ENOSPC), system, "disk full")
		assert.Equal(t, "disk full", c.Message())
		assert.Equal(t, "disk full", c.What())
	})

	t.Run("category default", func(t *testing.T) {
		c := syscode.New(int(syscall.ENOSPC), system)
		assert.Equal(t, syscall.ENOSPC.Error(), c.Message())
		assert.Empty(t, c.What())
	})

	t.Run("removed", func(t *testing.T) {
		c := syscode.NewWithMessage(int(syscall.ENOSPC), system, "disk full").WithMessage("")
		assert.Equal(t, syscall.ENOSPC.Error(), c.Message())
	})
}

func TestWithMessageCopies(t *testing.T) {
	a := syscode.NewWithMessage(int(syscall.EIO), system, "read")
	b := a.WithMessage("write")

	assert.Equal(t, "read", a.What())
	assert.Equal(t, "write", b.What())
	assert.True(t, a.Equal(b))
}

func TestClear(t *testing.T) {
	c := syscode.NewWithMessage(5, generic, "x")
	c.Clear()

	assert.Equal(t, 0, c.Value())
	assert.Empty(t, c.What())
	assert.Equal(t, "success", c.Message())
	assert.True(t, c.Equal(syscode.Code{}))
}

func TestAssignKeepsMessage(t *testing.T) {
	c := syscode.NewWithMessage(int(syscall.EIO), system, "ctx")
	c.Assign(7, generic)

	assert.Equal(t, 7, c.Value())
	assert.Equal(t, "generic", c.CategoryName())
	assert.Equal(t, "ctx", c.Message())
}

func TestAssignWithMessage(t *testing.T) {
	c := syscode.NewWithMessage(int(syscall.EIO), system, "ctx")
	c.AssignWithMessage(7, generic, "replaced")

	assert.Equal(t, 7, c.Value())
	assert.Equal(t, "replaced", c.Message())

	c.AssignWithMessage(8, generic, "")
	assert.Empty(t, c.What())
	assert.Equal(t, syscall.Errno(8).Error(), c.Message())
}

func TestAssignEnum(t *testing.T) {
	c := syscode.NewWithMessage(int(syscall.EIO), system, "ctx")
	c.AssignEnum(syscode.TimedOut)

	assert.True(t, c.EqualID(syscode.TimedOut.ErrorCode()))
	assert.Equal(t, "ctx", c.What())
}

func TestFromEnum(t *testing.T) {
	for _, e := range []syscode.Errc{
		syscode.OperationNotPermitted,
		syscode.NoSuchFileOrDirectory,
		syscode.InvalidArgument,
		syscode.ConnectionRefused,
	} {
		t.Run(e.String(), func(t *testing.T) {
			c := syscode.FromEnum(e)
			assert.True(t, c.Equal(syscode.From(e.ErrorCode())))
			assert.True(t, c.Equal(errcode.FromEnum[syscode.Traits, syscode.ErrorCode, syscode.Category, syscode.Condition](e)))
			assert.Empty(t, c.What())

			withMsg := syscode.FromEnumWithMessage(e, "dial")
			assert.True(t, withMsg.Equal(c))
			assert.Equal(t, "dial", withMsg.Message())
		})
	}
}

func TestFromPreservesIdentity(t *testing.T) {
	id := syscode.MakeErrorCode(int(syscall.ECONNRESET), system)
	c := syscode.FromWithMessage(id, "peer")

	assert.Equal(t, id, c.ID())
	assert.Equal(t, id.Value(), c.Value())
	assert.Equal(t, id.Category(), c.Category())
	assert.True(t, id.DefaultCondition().Equal(c.DefaultCondition()))
}

func TestNoRangeValidation(t *testing.T) {
	for _, v := range []int{-1, 1 << 20, -(1 << 31)} {
		c := syscode.New(v, generic)
		assert.Equal(t, v, c.Value())
		assert.True(t, c.Failed())
	}
}

func TestMatchesCondition(t *testing.T) {
	c := syscode.NewWithMessage(int(syscall.ETIMEDOUT), system, "dial db")

	assert.True(t, c.MatchesCondition(syscode.TimedOut.ErrorCondition()))
	assert.True(t, c.MatchesEnum(syscode.TimedOut))
	assert.False(t, c.MatchesEnum(syscode.ConnectionRefused))
	assert.False(t, c.EqualID(syscode.TimedOut.ErrorCode()), "system and generic identities differ")
}

func TestOrdering(t *testing.T) {
	a := syscode.New(1, system)
	b := syscode.NewWithMessage(2, system, "b")
	c := syscode.New(3, system)

	assert.True(t, a.Less(b))
	assert.True(t, b.Less(c))
	assert.True(t, a.Less(c))
	assert.False(t, b.Less(a))
	assert.False(t, b.Less(b))

	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, c.Compare(b))
	assert.Equal(t, 0, b.Compare(syscode.New(2, system)))
}

func TestOrderingAcrossCategories(t *testing.T) {
	codes := []syscode.Code{
		syscode.New(3, system),
		syscode.New(9, generic),
		syscode.New(1, system),
		syscode.New(2, generic),
	}
	slices.SortFunc(codes, errcode.Compare)

	got := make([]string, 0, len(codes))
	for _, c := range codes {
		got = append(got, c.String())
	}
	assert.Equal(t, []string{"generic:2", "generic:9", "system:1", "system:3"}, got)
}

func TestString(t *testing.T) {
	assert.Equal(t, "generic:22", syscode.NewWithMessage(22, generic, "ignored").String())
	assert.Equal(t, "system:0", syscode.Code{}.String())
}

func TestErr(t *testing.T) {
	c := syscode.NewWithMessage(int(syscall.EBUSY), system, "lock")
	err := c.Err()
	require.Error(t, err)

	got, ok := syscode.CodeOf(err)
	require.True(t, ok)
	assert.True(t, got.Equal(c))
	assert.Equal(t, "lock", got.What())
}

// renamedSystem is a distinct category that reports the system category's
// name.
type renamedSystem struct{}

func (*renamedSystem) Name() string { return "system" }

func (*renamedSystem) Message(int) string { return "renamed" }

func (c *renamedSystem) DefaultCondition(value int) syscode.Condition {
	return syscode.MakeCondition(value, c)
}

func TestIdentityIsCategoryNotName(t *testing.T) {
	a := syscode.New(5, &renamedSystem{})
	b := syscode.New(5, system)

	assert.False(t, a.Equal(b))
	assert.NotZero(t, errcode.Compare(a, b))
	assert.NotEqual(t, a.Message(), b.Message())

	// The hash is by name, so these collide; equality still tells them apart.
	assert.Equal(t, a.Hash(), b.Hash())

	seen := map[syscode.ErrorCode]int{}
	seen[a.Key()]++
	seen[b.Key()]++
	assert.Len(t, seen, 2)
}
