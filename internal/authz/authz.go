// Package authz contains the role/permission decision logic for the three
// account tiers. It is a pure rules engine: the evaluator holds only policy
// configuration fixed at construction, so a single instance may be shared by
// every request-handling goroutine.
//
// Denials are expressed as a false return, never as an error; errors are
// reserved for malformed input (unknown role or action values).
package authz

import (
	"errors"
	"fmt"

	"github.com/rta-cma/camtrack/models"
)

// Action is a request the evaluator can rule on.
type Action string

const (
	ActionCreate      Action = "create"
	ActionEdit        Action = "edit"
	ActionDelete      Action = "delete"
	ActionView        Action = "view"
	ActionManageUsers Action = "manage_users"
)

// Valid reports whether the action is one of the five known operations.
func (a Action) Valid() bool {
	switch a {
	case ActionCreate, ActionEdit, ActionDelete, ActionView, ActionManageUsers:
		return true
	}
	return false
}

var (
	// ErrUnknownRole is returned when a principal carries a role outside the
	// administrator/operator/viewer set.
	ErrUnknownRole = errors.New("unknown role")

	// ErrUnknownAction is returned when an action outside the known set is
	// requested.
	ErrUnknownAction = errors.New("unknown action")
)

// Principal is the authenticated actor a decision is made for: a role plus
// an optional location assignment. Operators with a nil AssignedLocationID
// are "global" operators.
type Principal struct {
	Role               models.UserRole
	AssignedLocationID *int64
}

// PrincipalOf derives a Principal from a resolved user account.
func PrincipalOf(u models.User) Principal {
	return Principal{Role: u.Role, AssignedLocationID: u.AssignedLocationID}
}

// Evaluator answers allow/deny questions about (principal, action, resource
// location) triples.
type Evaluator struct {
	// restrictUnassignedOperators flips the provisional business rule that
	// an operator without an assigned location may mutate resources at any
	// location. When true, such operators are denied create/edit instead.
	restrictUnassignedOperators bool
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithRestrictedUnassignedOperators denies create/edit to operators that
// have no assigned location, instead of the default allow-everywhere rule.
func WithRestrictedUnassignedOperators() Option {
	return func(e *Evaluator) {
		e.restrictUnassignedOperators = true
	}
}

// NewEvaluator constructs an Evaluator with the default policy: operators
// without an assigned location are unrestricted.
func NewEvaluator(opts ...Option) *Evaluator {
	e := &Evaluator{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Authorize decides whether the principal may perform the action against a
// resource at the given location. resourceLocationID may be nil for
// resources that are not tied to a location.
//
// The decision table, first match wins:
//
//	administrator          any action          allow
//	any role               manage_users        deny (administrator matched above)
//	any role               view                allow
//	viewer                 create/edit/delete  deny
//	operator               delete              deny
//	operator, no location  create/edit         allow (policy, see options)
//	operator, location     create/edit         allow iff resource location is
//	                                           nil or equals the assignment
func (e *Evaluator) Authorize(p Principal, action Action, resourceLocationID *int64) (bool, error) {
	if !p.Role.Valid() {
		return false, fmt.Errorf("%w: %q", ErrUnknownRole, p.Role)
	}
	if !action.Valid() {
		return false, fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}

	if p.Role == models.RoleAdministrator {
		return true, nil
	}

	switch action {
	case ActionManageUsers:
		return false, nil
	case ActionView:
		return true, nil
	case ActionDelete:
		// Deletion is administrator-only regardless of location.
		return false, nil
	}

	// create/edit from here on.
	if p.Role == models.RoleViewer {
		return false, nil
	}

	// Operator. Location scoping applies only when the operator is assigned
	// to a site; an unassigned operator follows the configured policy.
	if p.AssignedLocationID == nil {
		return !e.restrictUnassignedOperators, nil
	}
	if resourceLocationID == nil {
		return true, nil
	}
	return *p.AssignedLocationID == *resourceLocationID, nil
}

// FilterLocations narrows candidate location ids to those visible to the
// principal: administrators see all, operators with an assignment see only
// that location (when present among the candidates), everyone else sees all
// candidates.
func (e *Evaluator) FilterLocations(p Principal, candidates []int64) ([]int64, error) {
	if !p.Role.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRole, p.Role)
	}

	if p.Role == models.RoleOperator && p.AssignedLocationID != nil {
		for _, id := range candidates {
			if id == *p.AssignedLocationID {
				return []int64{id}, nil
			}
		}
		return []int64{}, nil
	}

	out := make([]int64, len(candidates))
	copy(out, candidates)
	return out, nil
}
