package infra

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

const modelText = `[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

// Policies is the static role permission table: role, resource, action.
var Policies = [][]string{
	{"employee", "leave", "submit"},
	{"employee", "leave", "read_own"},
	{"employee", "leave_type", "read_allowed"},
	{"employee", "profile", "read"},

	{"manager", "leave", "decide"},
	{"manager", "leave", "read_pending"},
	{"manager", "leave", "read_team"},

	{"admin", "leave", "read_all"},
	{"admin", "user", "read"},
	{"admin", "user", "manage"},
	{"admin", "leave_type", "read"},
	{"admin", "leave_type", "manage"},
	{"admin", "audit", "read"},
	{"admin", "policy", "read"},
}

// Inheritance lists child, parent pairs: a manager can do everything an employee can.
var Inheritance = [][]string{
	{"manager", "employee"},
	{"admin", "manager"},
}

// NewEnforcer builds an in-memory enforcer loaded with Policies and Inheritance.
func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}

	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	for _, p := range Policies {
		if _, err := e.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, err
		}
	}
	for _, g := range Inheritance {
		if _, err := e.AddGroupingPolicy(g[0], g[1]); err != nil {
			return nil, err
		}
	}
	return e, nil
}
