package services

// SeedUser is a statically defined user record for the seed dataset.
type SeedUser struct {
	Email    string   `validate:"required,email"`
	FullName string   `validate:"required"`
	Password string   `validate:"required,min=6"`
	Roles    []string `validate:"required,min=1"`
}

// SeedData is the static dataset the reseeding routine loads. Product
// records share the shape of CreateProductInput so they travel through the
// exact same create path as API writes.
type SeedData struct {
	Users    []SeedUser
	Products []CreateProductInput
}

func strPtr(s string) *string { return &s }

// initialData is the fixed catalog the seed endpoint installs. The first
// user is the admin that owns every seeded product.
var initialData = SeedData{
	Users: []SeedUser{
		{
			Email:    "admin@catalog.local",
			FullName: "Admin User",
			Password: "Abc12345",
			Roles:    []string{"admin"},
		},
		{
			Email:    "staff@catalog.local",
			FullName: "Staff User",
			Password: "Abc12345",
			Roles:    []string{"user"},
		},
	},
	Products: []CreateProductInput{
		{
			Title:       "Men's Chill Crew Neck Sweatshirt",
			Description: strPtr("Introducing the softest crew neck sweatshirt, featuring a subtle logo on the chest."),
			Price:       75,
			Stock:       7,
			Sizes:       []string{"XS", "S", "M", "L", "XL", "XXL"},
			Gender:      "men",
			Tags:        []string{"sweatshirt"},
			Images:      []string{"https://cdn.catalog.local/1740176-00-A_0_2000.jpg", "https://cdn.catalog.local/1740176-00-A_1.jpg"},
		},
		{
			Title:       "Men's Quilted Shirt Jacket",
			Description: strPtr("A quilted shirt jacket with a premium matte finish, designed for style and comfort."),
			Price:       200,
			Stock:       5,
			Sizes:       []string{"XS", "S", "M", "XL", "XXL"},
			Gender:      "men",
			Tags:        []string{"jacket"},
			Images:      []string{"https://cdn.catalog.local/1740507-00-A_0_2000.jpg", "https://cdn.catalog.local/1740507-00-A_1.jpg"},
		},
		{
			Title:       "Men's Raven Lightweight Zip Up Bomber Jacket",
			Description: strPtr("A lightweight zip-up bomber with an orange accent zipper pull."),
			Price:       130,
			Stock:       10,
			Sizes:       []string{"S", "M", "L", "XL", "XXL"},
			Gender:      "men",
			Tags:        []string{"shirt"},
			Images:      []string{"https://cdn.catalog.local/1740250-00-A_0_2000.jpg", "https://cdn.catalog.local/1740250-00-A_1.jpg"},
		},
		{
			Title:       "Men's Turbine Long Sleeve Tee",
			Description: strPtr("A long sleeve tee made from a cotton and polyester blend with a subtle wordmark."),
			Price:       45,
			Stock:       50,
			Sizes:       []string{"XS", "S", "M", "L"},
			Gender:      "men",
			Tags:        []string{"shirt"},
			Images:      []string{"https://cdn.catalog.local/1740280-00-A_0_2000.jpg", "https://cdn.catalog.local/1740280-00-A_1.jpg"},
		},
		{
			Title:       "Women's Cropped Puffer Jacket",
			Description: strPtr("A cropped puffer jacket with a cinched waist and hidden zipper pockets."),
			Price:       225,
			Stock:       85,
			Sizes:       []string{"XS", "S", "M"},
			Gender:      "women",
			Tags:        []string{"hoodie"},
			Images:      []string{"https://cdn.catalog.local/1740535-00-A_0_2000.jpg", "https://cdn.catalog.local/1740535-00-A_1.jpg"},
		},
		{
			Title:       "Women's Chill Half Zip Cropped Hoodie",
			Description: strPtr("A soft fleece half-zip hoodie with a cropped silhouette."),
			Price:       130,
			Stock:       10,
			Sizes:       []string{"XS", "S", "M", "XXL"},
			Gender:      "women",
			Tags:        []string{"hoodie"},
			Images:      []string{"https://cdn.catalog.local/1740226-00-A_0_2000.jpg", "https://cdn.catalog.local/1740226-00-A_1.jpg"},
		},
		{
			Title:       "Women's T Logo Short Sleeve Scoop Neck Tee",
			Description: strPtr("A short sleeve scoop neck tee with a left chest logo."),
			Price:       35,
			Stock:       30,
			Sizes:       []string{"XS", "S", "M", "L", "XL", "XXL"},
			Gender:      "women",
			Tags:        []string{"shirt"},
			Images:      []string{"https://cdn.catalog.local/8765090-00-A_0_2000.jpg", "https://cdn.catalog.local/8765090-00-A_1.jpg"},
		},
		{
			Title:       "Kids Racing Stripe Tee",
			Description: strPtr("A racing stripe tee for the next generation of drivers."),
			Price:       30,
			Stock:       10,
			Sizes:       []string{"XS", "S", "M"},
			Gender:      "kid",
			Tags:        []string{"shirt"},
			Images:      []string{"https://cdn.catalog.local/8529312-00-A_0_2000.jpg", "https://cdn.catalog.local/8529312-00-A_1.jpg"},
		},
		{
			Title:       "Kids Cyberquad Bomber Jacket",
			Description: strPtr("A bomber jacket with a graffiti-style illustration on the back."),
			Price:       65,
			Stock:       10,
			Sizes:       []string{"XS", "S", "M"},
			Gender:      "kid",
			Tags:        []string{"shirt"},
			Images:      []string{"https://cdn.catalog.local/1742702-00-A_0_2000.jpg", "https://cdn.catalog.local/1742702-00-A_1.jpg"},
		},
		{
			Title:       "3D Large Wordmark Pullover Hoodie",
			Description: strPtr("A heavyweight pullover hoodie with a 3D silicone-printed wordmark."),
			Price:       70,
			Stock:       15,
			Sizes:       []string{"XS", "S", "XL", "XXL"},
			Gender:      "unisex",
			Tags:        []string{"hoodie"},
			Images:      []string{"https://cdn.catalog.local/1740051-00-A_0_2000.jpg", "https://cdn.catalog.local/1740051-00-A_1.jpg"},
		},
	},
}
