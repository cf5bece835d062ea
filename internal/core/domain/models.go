package domain

type User struct {
	ID         int     `json:"id"`
	FirstName  string  `json:"firstName"`
	LastName   string  `json:"lastName"`
	MaidenName string  `json:"maidenName,omitempty"`
	Age        int     `json:"age"`
	Gender     string  `json:"gender"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
	Username   string  `json:"username"`
	BirthDate  string  `json:"birthDate,omitempty"`
	Image      string  `json:"image,omitempty"`
	BloodGroup string  `json:"bloodGroup,omitempty"`
	Height     float64 `json:"height,omitempty"`
	Weight     float64 `json:"weight,omitempty"`
	EyeColor   string  `json:"eyeColor,omitempty"`
	Hair       Hair    `json:"hair"`
	Address    Address `json:"address"`
	Company    Company `json:"company"`
	University string  `json:"university,omitempty"`
	Role       string  `json:"role,omitempty"`
}

// FullName joins first and last name.
func (u User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}

	return u.FirstName + " " + u.LastName
}

type Hair struct {
	Color string `json:"color"`
	Type  string `json:"type"`
}

type Address struct {
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

type Company struct {
	Department string  `json:"department"`
	Name       string  `json:"name"`
	Title      string  `json:"title"`
	Address    Address `json:"address"`
}

type Product struct {
	ID                   int      `json:"id"`
	Title                string   `json:"title"`
	Description          string   `json:"description"`
	Category             string   `json:"category"`
	Price                float64  `json:"price"`
	DiscountPercentage   float64  `json:"discountPercentage"`
	Rating               float64  `json:"rating"`
	Stock                int      `json:"stock"`
	Tags                 []string `json:"tags,omitempty"`
	Brand                string   `json:"brand,omitempty"`
	SKU                  string   `json:"sku,omitempty"`
	WarrantyInformation  string   `json:"warrantyInformation,omitempty"`
	ShippingInformation  string   `json:"shippingInformation,omitempty"`
	AvailabilityStatus   string   `json:"availabilityStatus,omitempty"`
	ReturnPolicy         string   `json:"returnPolicy,omitempty"`
	MinimumOrderQuantity int      `json:"minimumOrderQuantity,omitempty"`
	Reviews              []Review `json:"reviews,omitempty"`
	Images               []string `json:"images,omitempty"`
	Thumbnail            string   `json:"thumbnail,omitempty"`
}

type Review struct {
	Rating        int    `json:"rating"`
	Comment       string `json:"comment"`
	Date          string `json:"date"`
	ReviewerName  string `json:"reviewerName"`
	ReviewerEmail string `json:"reviewerEmail"`
}

type Category struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// Page is one page of a remote collection. Total is the server-reported
// number of matches for the query, independent of the page size.
type Page[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
	Skip  int `json:"skip"`
	Limit int `json:"limit"`
}

// Profile is the authenticated user's profile as returned by the login endpoint.
type Profile struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Gender    string `json:"gender"`
	Image     string `json:"image"`
}

type Credentials struct {
	Username string
	Password string
	// SessionLifetimeMinutes is forwarded to the login endpoint.
	SessionLifetimeMinutes int
}

type AuthResult struct {
	Profile Profile
	Token   string
}

type CacheStats struct {
	Entries     int    `json:"entries"`
	Hits        uint64 `json:"hits"`
	Misses      uint64 `json:"misses"`
	Evictions   uint64 `json:"evictions"`
	Expirations uint64 `json:"expirations"`
}

// Add sums two stat snapshots.
func (s CacheStats) Add(o CacheStats) CacheStats {
	return CacheStats{
		Entries:     s.Entries + o.Entries,
		Hits:        s.Hits + o.Hits,
		Misses:      s.Misses + o.Misses,
		Evictions:   s.Evictions + o.Evictions,
		Expirations: s.Expirations + o.Expirations,
	}
}
