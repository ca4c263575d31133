package structs

// ProductRequest creates or updates a catalog product. Price and cost travel
// as decimal strings to avoid float drift on money.
type ProductRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=200"`
	Description string `json:"description" validate:"omitempty,max=1000"`
	Price       string `json:"price" validate:"required"`
	Cost        string `json:"cost" validate:"omitempty"`
	Stock       int    `json:"stock" validate:"gte=0"`
	ImageURL    string `json:"image_url" validate:"omitempty,url"`
	CategoryId  string `json:"category_id" validate:"required,uuid4"`
	Active      *bool  `json:"active" validate:"omitempty"`
}

type CategoryRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
}

// EstablishmentRequest updates the business profile shown on the storefront
// header.
type EstablishmentRequest struct {
	Name       string `json:"name" validate:"required,min=2,max=100"`
	LogoURL    string `json:"logo_url" validate:"omitempty,url"`
	Phone      string `json:"phone" validate:"required,min=10,max=20"`
	Address    string `json:"address" validate:"required,max=300"`
	ThemeColor string `json:"theme_color" validate:"omitempty,hexcolor"`
}
