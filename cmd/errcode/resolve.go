package main

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"codeberg.org/mutker/errcode/errcode/rpccode"
	"codeberg.org/mutker/errcode/errcode/syscode"
	"codeberg.org/mutker/errcode/internal/errors"
	"codeberg.org/mutker/errcode/internal/journal"
	"github.com/rs/zerolog"
)

// inspectable is the part of a Code the commands use, whichever backend it
// comes from.
type inspectable interface {
	journal.Code
	zerolog.LogObjectMarshaler
	json.Marshaler
	Message() string
	String() string
	Failed() bool
}

// resolved is a code built for one backend, with what only the backend knows
// how to produce.
type resolved struct {
	backend   string
	code      inspectable
	condition string
	// systemError returns the code as an error, with prefix replacing the
	// default message when not empty.
	systemError func(prefix string) error
}

var (
	sysCategories = map[string]syscode.Category{
		syscode.GenericCategory().Name(): syscode.GenericCategory(),
		syscode.SystemCategory().Name():  syscode.SystemCategory(),
	}
	rpcCategories = map[string]rpccode.Category{
		rpccode.StatusCategory().Name(): rpccode.StatusCategory(),
		rpccode.HTTPCategory().Name():   rpccode.HTTPCategory(),
	}
)

// resolve builds the code for arg in category of backend. arg is a number or,
// when category is empty, a symbolic name: an errno name such as ENOENT for
// sys, a canonical code name such as NOT_FOUND for rpc.
func resolve(backend, category, arg, msg string) (*resolved, error) {
	switch backend {
	case "sys":
		return resolveSys(category, arg, msg)
	case "rpc":
		return resolveRPC(category, arg, msg)
	default:
		return nil, errors.New().WithData(errors.ErrInvalidBackend, backend)
	}
}

func resolveSys(category, arg, msg string) (*resolved, error) {
	var c syscode.Code
	if value, err := strconv.Atoi(arg); err == nil {
		cat, err := lookupCategory(sysCategories, category, syscode.SystemCategory())
		if err != nil {
			return nil, err
		}
		c = syscode.NewWithMessage(value, cat, msg)
	} else if e, ok := syscode.ParseErrc(arg); ok && category == "" {
		c = syscode.FromEnumWithMessage(e, msg)
	} else {
		return nil, errors.New().WithData(errors.ErrInvalidValue, arg)
	}

	return &resolved{
		backend:   "sys",
		code:      c,
		condition: c.DefaultCondition().String(),
		systemError: func(prefix string) error {
			if prefix == "" {
				return syscode.NewSystemError(c)
			}
			return syscode.NewSystemErrorWithMessage(c, prefix)
		},
	}, nil
}

func resolveRPC(category, arg, msg string) (*resolved, error) {
	var c rpccode.Code
	if value, err := strconv.Atoi(arg); err == nil {
		cat, err := lookupCategory(rpcCategories, category, rpccode.StatusCategory())
		if err != nil {
			return nil, err
		}
		c = rpccode.NewWithMessage(value, cat, msg)
	} else if e, ok := rpccode.ParseCanonical(arg); ok && category == "" {
		c = rpccode.FromEnumWithMessage(e, msg)
	} else {
		return nil, errors.New().WithData(errors.ErrInvalidValue, arg)
	}

	return &resolved{
		backend:   "rpc",
		code:      c,
		condition: c.DefaultCondition().String(),
		systemError: func(prefix string) error {
			if prefix == "" {
				return rpccode.NewSystemError(c)
			}
			return rpccode.NewSystemErrorWithMessage(c, prefix)
		},
	}, nil
}

func lookupCategory[C any](cats map[string]C, name string, def C) (C, error) {
	if name == "" {
		return def, nil
	}
	if cat, ok := cats[name]; ok {
		return cat, nil
	}

	names := make([]string, 0, len(cats))
	for n := range cats {
		names = append(names, n)
	}
	sort.Strings(names)

	var zero C
	return zero, errors.New().WithMessage(errors.ErrUnknownCategory,
		fmt.Sprintf("unknown category %q, want one of %v", name, names))
}
