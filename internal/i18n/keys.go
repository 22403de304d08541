// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Authentication
	KeyAuthRequired           = "auth.required"
	KeyAuthInvalidToken       = "auth.invalid_token"
	KeyAuthTokenExpired       = "auth.token_expired"
	KeyAuthInvalidCredentials = "auth.invalid_credentials"
	KeyAuthEmailExists        = "auth.email_exists"
	KeyAuthLoginSuccess       = "auth.login_success"
	KeyAuthRegisterSuccess    = "auth.register_success"
	KeyAuthPasswordChanged    = "auth.password_changed"
	KeyAuthPasswordWrong      = "auth.password_wrong"

	// Users
	KeyUserNotFound = "user.not_found"
	KeyUserUpdated  = "user.updated"
	KeyUserDeleted  = "user.deleted"

	// Addresses
	KeyAddressAdded    = "address.added"
	KeyAddressDeleted  = "address.deleted"
	KeyAddressNotFound = "address.not_found"

	// Vehicle brands
	KeyBrandCreated  = "brand.created"
	KeyBrandUpdated  = "brand.updated"
	KeyBrandDeleted  = "brand.deleted"
	KeyBrandNotFound = "brand.not_found"
	KeyBrandExists   = "brand.exists"

	// Vehicles
	KeyCarCreated  = "car.created"
	KeyCarUpdated  = "car.updated"
	KeyCarDeleted  = "car.deleted"
	KeyCarNotFound = "car.not_found"

	// Part brands
	KeyPartBrandCreated  = "part_brand.created"
	KeyPartBrandUpdated  = "part_brand.updated"
	KeyPartBrandDeleted  = "part_brand.deleted"
	KeyPartBrandNotFound = "part_brand.not_found"
	KeyPartBrandExists   = "part_brand.exists"

	// Categories
	KeyCategoryCreated       = "category.created"
	KeyCategoryUpdated       = "category.updated"
	KeyCategoryDeleted       = "category.deleted"
	KeyCategoryNotFound      = "category.not_found"
	KeyCategoryParentInvalid = "category.parent_invalid"

	// Parts
	KeyPartCreated     = "part.created"
	KeyPartUpdated     = "part.updated"
	KeyPartDeleted     = "part.deleted"
	KeyPartNotFound    = "part.not_found"
	KeyPartOemConflict = "part.oem_conflict"

	// Garage
	KeyGarageAdded     = "garage.added"
	KeyGarageRemoved   = "garage.removed"
	KeyGarageDuplicate = "garage.duplicate"

	// Cart
	KeyCartUpdated      = "cart.updated"
	KeyCartItemRemoved  = "cart.item_removed"
	KeyCartCleared      = "cart.cleared"
	KeyCartItemNotFound = "cart.item_not_found"

	// Orders
	KeyOrderCreated           = "order.created"
	KeyOrderUpdated           = "order.updated"
	KeyOrderDeleted           = "order.deleted"
	KeyOrderNotFound          = "order.not_found"
	KeyOrderCartEmpty         = "order.cart_empty"
	KeyOrderInvalidTransition = "order.invalid_transition"

	// Validation
	KeyValidationInvalid = "validation.invalid"

	// Admin
	KeyAdminAccessDenied = "admin.access_denied"
)
