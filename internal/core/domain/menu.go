package domain

// MenuEntry is one node of the static navigation tree. Roles is the set of
// roles allowed to see the entry; an entry whose filtered submenu comes out
// empty is rendered as a leaf.
type MenuEntry struct {
	ID      string      `json:"id"`
	Label   string      `json:"label"`
	Icon    string      `json:"icon,omitempty"`
	Path    string      `json:"path"`
	Roles   []string    `json:"-"`
	Submenu []MenuEntry `json:"submenu,omitempty"`
}

// DefaultMenu is the static navigation configuration, immutable at runtime.
// Labels are the dashboard's display strings.
var DefaultMenu = []MenuEntry{
	{
		ID:    "dashboard",
		Label: "Панель",
		Icon:  "dashboard",
		Path:  "/",
		Roles: []string{RoleAdmin, RoleWarehouse, RoleSeller, RoleUser},
	},
	{
		ID:    "warehouse",
		Label: "Склад",
		Icon:  "inventory",
		Path:  "/warehouse",
		Roles: []string{RoleAdmin, RoleWarehouse},
		Submenu: []MenuEntry{
			{ID: "items", Label: "Номенклатура", Path: "/warehouse/items", Roles: []string{RoleAdmin, RoleWarehouse}},
			{ID: "categories", Label: "Разделы", Path: "/warehouse/categories", Roles: []string{RoleAdmin, RoleWarehouse}},
			{ID: "shelves", Label: "Склады и полки", Path: "/warehouse/shelves", Roles: []string{RoleAdmin}},
		},
	},
	{
		ID:    "production",
		Label: "Производство",
		Icon:  "factory",
		Path:  "/production",
		Roles: []string{RoleAdmin, RoleWarehouse},
		Submenu: []MenuEntry{
			{ID: "passports", Label: "Паспорта", Path: "/production/passports", Roles: []string{RoleAdmin, RoleWarehouse}},
			{ID: "operations", Label: "Операции", Path: "/production/operations", Roles: []string{RoleAdmin, RoleWarehouse}},
			{ID: "tasks", Label: "Задачи", Path: "/production/tasks", Roles: []string{RoleAdmin, RoleWarehouse}},
		},
	},
	{
		ID:    "sales",
		Label: "Продажи",
		Icon:  "sell",
		Path:  "/sales",
		Roles: []string{RoleAdmin, RoleSeller},
	},
	{
		ID:    "users",
		Label: "Пользователи",
		Icon:  "group",
		Path:  "/users",
		Roles: []string{RoleAdmin},
	},
}
