package permission

// Role inheritance: super_admin > admin > moderator. A "*" object or action
// in a policy matches anything.
const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && (p.obj == "*" || r.obj == p.obj) && (p.act == "*" || r.act == p.act)
`

// Resources guarded by the admin API.
const (
	ResourceReport    = "report"
	ResourceBlog      = "blog"
	ResourceCategory  = "category"
	ResourceChat      = "chat"
	ResourceAnalytics = "analytics"
	ResourceSetting   = "setting"
	ResourceAuditLog  = "audit_log"
	ResourceBroadcast = "broadcast"
	ResourceScam      = "scam"
)

const (
	ActionRead   = "read"
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
	ActionSend   = "send"
)
