package components

// Role is the element kind a component renders, the terminal counterpart of
// an HTML element or ARIA role.
type Role string

const (
	RoleButton    Role = "button"
	RoleInput     Role = "input"
	RoleTextArea  Role = "textarea"
	RoleSelect    Role = "select"
	RoleAnchor    Role = "anchor"
	RoleImage     Role = "image"
	RoleText      Role = "text"
	RoleHeading   Role = "heading"
	RoleList      Role = "list"
	RoleListItem  Role = "listitem"
	RoleNav       Role = "nav"
	RoleSeparator Role = "separator"
	RoleContainer Role = "container"
)

// Element is a component that reports its role and computed class list.
type Element interface {
	ContextualRenderable
	Role() Role
	ClassName() string
}
