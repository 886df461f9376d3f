package seed

import "mydahanu/directory/internal/domain"

var categories = []domain.Category{
	{
		ID:       "cat_events",
		Name:     "Events",
		Icon:     "🎉",
		Gradient: []string{"#EC4899", "#F472B6"},
		Subcategories: []domain.Subcategory{
			{ID: "sub_events_1", Name: "Event Planning & Services", Details: "Comprehensive planning and execution for all types of events, from corporate gatherings to private celebrations. Includes decorators, DJ, orchestra, and event management.", Image: "https://picsum.photos/400/300?random=1", ProviderCount: 45},
			{ID: "sub_events_2", Name: "Catering & Food", Details: "High-quality catering services with diverse food options, including bakery and confectionery. Tailored menus for any event size and preference.", Image: "https://picsum.photos/400/300?random=2", ProviderCount: 32},
			{ID: "sub_events_3", Name: "Lighting", Details: "Professional lighting solutions to enhance the ambiance and ensure clear visibility for your event.", Image: "https://picsum.photos/400/300?random=3", ProviderCount: 18},
		},
	},
	{
		ID:       "cat_medical",
		Name:     "Medical & Health",
		Icon:     "🏥",
		Gradient: []string{"#3B82F6", "#60A5FA"},
		Subcategories: []domain.Subcategory{
			{ID: "sub_medical_1", Name: "Hospitals & Clinics", Details: "Access to hospitals, clinics, dentists, and skin specialists for comprehensive medical care.", Image: "https://picsum.photos/400/300?random=4", ProviderCount: 67},
			{ID: "sub_medical_2", Name: "Diagnostics & Imaging", Details: "Sonography centers, MRI services, and other diagnostic imaging facilities.", Image: "https://picsum.photos/400/300?random=5", ProviderCount: 23},
			{ID: "sub_medical_3", Name: "Medical Stores & Pharmacies", Details: "Wide range of medicines and pharmaceutical services.", Image: "https://picsum.photos/400/300?random=6", ProviderCount: 89},
			{ID: "sub_medical_4", Name: "Veterinary Services", Details: "Dedicated medical care for pets and animals.", Image: "https://picsum.photos/400/300?random=7", ProviderCount: 12},
			{ID: "sub_medical_5", Name: "Nursing & Home Care", Details: "Professional nursing care and assistance at home.", Image: "https://picsum.photos/400/300?random=8", ProviderCount: 34},
			{ID: "sub_medical_6", Name: "Ambulance", Details: "24/7 emergency ambulance services.", Image: "https://picsum.photos/400/300?random=9", ProviderCount: 8},
			{ID: "sub_medical_7", Name: "Blood Banks", Details: "Blood donation and transfusion services.", Image: "https://picsum.photos/400/300?random=10", ProviderCount: 5},
		},
	},
	{
		ID:       "cat_transport",
		Name:     "Transport",
		Icon:     "🚗",
		Gradient: []string{"#10B981", "#34D399"},
		Subcategories: []domain.Subcategory{
			{ID: "sub_transport_1", Name: "Passenger Transport", Details: "Private cars, buses, travel agents, and school transport services.", Image: "https://picsum.photos/400/300?random=11", ProviderCount: 56},
			{ID: "sub_transport_2", Name: "Goods Delivery", Details: "Heavy duty vehicles, small tempos, and pickup services.", Image: "https://picsum.photos/400/300?random=12", ProviderCount: 43},
			{ID: "sub_transport_3", Name: "Ticketing & Booking", Details: "Travel ticket booking and reservation services.", Image: "https://picsum.photos/400/300?random=13", ProviderCount: 21},
			{ID: "sub_transport_4", Name: "Automobile Services", Details: "Car and bike service centers, washing, tyre repair, and more.", Image: "https://picsum.photos/400/300?random=14", ProviderCount: 78},
		},
	},
	{
		ID:       "cat_wellness",
		Name:     "Beauty & Wellness",
		Icon:     "💆",
		Gradient: []string{"#A855F7", "#C084FC"},
		Subcategories: []domain.Subcategory{
			{ID: "sub_wellness_1", Name: "Fitness & Gyms", Details: "Gym, Zumba, Yoga, and meditation classes.", Image: "https://picsum.photos/400/300?random=15", ProviderCount: 29},
			{ID: "sub_wellness_2", Name: "Salons & Spas", Details: "Beauty parlours, spa, massage services, and hair transformation.", Image: "https://picsum.photos/400/300?random=16", ProviderCount: 64},
		},
	},
	{
		ID:       "cat_home",
		Name:     "Home & Maintenance",
		Icon:     "🏠",
		Gradient: []string{"#F59E0B", "#FCD34D"},
		Subcategories: []domain.Subcategory{
			{ID: "sub_home_1", Name: "Handyman Services", Details: "Plumber, electrician, carpenter, and painter services.", Image: "https://picsum.photos/400/300?random=17", ProviderCount: 92},
			{ID: "sub_home_2", Name: "Interior Design & Renovation", Details: "Interior decoration, civil architecture, and contracting.", Image: "https://picsum.photos/400/300?random=18", ProviderCount: 37},
			{ID: "sub_home_3", Name: "Appliance Repair", Details: "Repair services for home appliances and electronics.", Image: "https://picsum.photos/400/300?random=19", ProviderCount: 51},
			{ID: "sub_home_4", Name: "Electronic Repair", Details: "Laptop, computer, IT services, and phone repair.", Image: "https://picsum.photos/400/300?random=20", ProviderCount: 28},
		},
	},
	{
		ID:       "cat_housekeeping",
		Name:     "Housekeeping",
		Icon:     "🧹",
		Gradient: []string{"#14B8A6", "#5EEAD4"},
		Subcategories: []domain.Subcategory{
			{ID: "sub_housekeeping_1", Name: "Domestic Help", Details: "House servants, maids, and cooks.", Image: "https://picsum.photos/400/300?random=21", ProviderCount: 73},
			{ID: "sub_housekeeping_2", Name: "Other Services", Details: "Milk supply, water supply, and watchman services.", Image: "https://picsum.photos/400/300?random=22", ProviderCount: 19},
		},
	},
	{
		ID:       "cat_food",
		Name:     "Food & Beverages",
		Icon:     "🍽️",
		Gradient: []string{"#EAB308", "#FDE047"},
		Subcategories: []domain.Subcategory{
			{ID: "sub_food_1", Name: "Restaurants", Details: "Veg, non-veg, street food, and chain restaurants.", Image: "https://picsum.photos/400/300?random=23", ProviderCount: 156},
			{ID: "sub_food_2", Name: "Beverages", Details: "Tea & coffee shops, ice cream parlours.", Image: "https://picsum.photos/400/300?random=24", ProviderCount: 47},
		},
	},
	{
		ID:       "cat_accommodation",
		Name:     "Accommodation",
		Icon:     "🏨",
		Gradient: []string{"#6366F1", "#818CF8"},
		Subcategories: []domain.Subcategory{
			{ID: "sub_accommodation_1", Name: "Hotels & Lodging", Details: "Hotels, guest houses, and private bungalows.", Image: "https://picsum.photos/400/300?random=25", ProviderCount: 38},
			{ID: "sub_accommodation_2", Name: "Experiences", Details: "Agro-tourism and unique accommodation options.", Image: "https://picsum.photos/400/300?random=26", ProviderCount: 14},
		},
	},
}

var banners = []domain.Banner{
	{ID: "1", Title: "Special Event Packages", Description: "Get 20% off on event planning services", Image: "https://picsum.photos/400/200?random=101"},
	{ID: "2", Title: "Health Checkup Camp", Description: "Free health screening this weekend", Image: "https://picsum.photos/400/200?random=102"},
	{ID: "3", Title: "Transport Deals", Description: "Book your ride with exclusive discounts", Image: "https://picsum.photos/400/200?random=103"},
	{ID: "4", Title: "Wellness Weekend", Description: "Spa and salon services at special prices", Image: "https://picsum.photos/400/200?random=104"},
}

var services = []domain.Service{
	// Events
	{
		ID:            "srv_1",
		Name:          "Royal Event Planners",
		Category:      "Events",
		SubcategoryID: "sub_events_1",
		Description:   "Premium event planning services for weddings, corporate events, and private parties. We handle everything from decoration to catering coordination.",
		Image:         "https://picsum.photos/400/300?random=201",
		Rating:        4.8,
		Reviews:       234,
		Price:         "25,000",
		Location:      "Dahanu West",
		Timing:        "9:00 AM - 8:00 PM",
		Features:      []string{"Complete Event Management", "Decoration Services", "Vendor Coordination", "24/7 Support"},
	},
	{
		ID:            "srv_2",
		Name:          "Delicious Catering Services",
		Category:      "Events",
		SubcategoryID: "sub_events_2",
		Description:   "Multi-cuisine catering for all occasions. Vegetarian and non-vegetarian options available with customizable menus.",
		Image:         "https://picsum.photos/400/300?random=202",
		Rating:        4.6,
		Reviews:       189,
		Price:         "500/plate",
		Location:      "Dahanu Road",
		Timing:        "24/7 Service",
		Features:      []string{"Multi-Cuisine Menu", "Live Cooking Stations", "Professional Staff", "Customizable Packages"},
	},
	// Medical
	{
		ID:            "srv_3",
		Name:          "City Hospital",
		Category:      "Medical & Health",
		SubcategoryID: "sub_medical_1",
		Description:   "Multi-specialty hospital with 24/7 emergency services, modern equipment, and experienced doctors.",
		Image:         "https://picsum.photos/400/300?random=203",
		Rating:        4.7,
		Reviews:       567,
		Price:         "500",
		Location:      "Dahanu Central",
		Timing:        "24/7 Emergency",
		Features:      []string{"Emergency Services", "ICU Facility", "Multi-Specialty", "Insurance Accepted"},
	},
	{
		ID:            "srv_4",
		Name:          "Quick Diagnostics",
		Category:      "Medical & Health",
		SubcategoryID: "sub_medical_2",
		Description:   "Advanced diagnostic center with MRI, CT scan, X-ray, and pathology services. Quick and accurate reports.",
		Image:         "https://picsum.photos/400/300?random=204",
		Rating:        4.5,
		Reviews:       312,
		Price:         "1,500",
		Location:      "Dahanu East",
		Timing:        "7:00 AM - 9:00 PM",
		Features:      []string{"MRI & CT Scan", "Digital X-Ray", "Home Sample Collection", "Online Reports"},
	},
	// Transport
	{
		ID:            "srv_5",
		Name:          "Swift Cabs",
		Category:      "Transport",
		SubcategoryID: "sub_transport_1",
		Description:   "Reliable taxi service with AC and non-AC options. Airport transfers and outstation trips available.",
		Image:         "https://picsum.photos/400/300?random=205",
		Rating:        4.4,
		Reviews:       423,
		Price:         "15/km",
		Location:      "All Dahanu",
		Timing:        "24/7 Available",
		Features:      []string{"GPS Tracking", "AC/Non-AC Options", "Airport Transfers", "Outstation Trips"},
	},
	{
		ID:            "srv_6",
		Name:          "Express Delivery",
		Category:      "Transport",
		SubcategoryID: "sub_transport_2",
		Description:   "Fast and reliable goods delivery service. Small parcels to heavy cargo, we handle it all.",
		Image:         "https://picsum.photos/400/300?random=206",
		Rating:        4.3,
		Reviews:       278,
		Price:         "200",
		Location:      "Dahanu",
		Timing:        "8:00 AM - 8:00 PM",
		Features:      []string{"Same Day Delivery", "Package Tracking", "Insurance Available", "Bulk Discounts"},
	},
	// Beauty & Wellness
	{
		ID:            "srv_7",
		Name:          "FitZone Gym",
		Category:      "Beauty & Wellness",
		SubcategoryID: "sub_wellness_1",
		Description:   "Modern gym with latest equipment, personal trainers, and group fitness classes including Zumba and Yoga.",
		Image:         "https://picsum.photos/400/300?random=207",
		Rating:        4.6,
		Reviews:       156,
		Price:         "1,500/month",
		Location:      "Dahanu West",
		Timing:        "5:00 AM - 10:00 PM",
		Features:      []string{"Personal Training", "Group Classes", "Modern Equipment", "Nutrition Guidance"},
	},
	{
		ID:            "srv_8",
		Name:          "Glamour Salon & Spa",
		Category:      "Beauty & Wellness",
		SubcategoryID: "sub_wellness_2",
		Description:   "Premium salon and spa services for men and women. Hair, skin, and body treatments available.",
		Image:         "https://picsum.photos/400/300?random=208",
		Rating:        4.7,
		Reviews:       289,
		Price:         "500",
		Location:      "Dahanu Market",
		Timing:        "10:00 AM - 8:00 PM",
		Features:      []string{"Hair Treatments", "Skin Care", "Body Spa", "Bridal Packages"},
	},
	// Home
	{
		ID:            "srv_9",
		Name:          "QuickFix Handyman",
		Category:      "Home & Maintenance",
		SubcategoryID: "sub_home_1",
		Description:   "Professional plumbing, electrical, carpentry, and painting services. Quick response and quality work guaranteed.",
		Image:         "https://picsum.photos/400/300?random=209",
		Rating:        4.5,
		Reviews:       412,
		Price:         "300/hour",
		Location:      "All Dahanu",
		Timing:        "8:00 AM - 7:00 PM",
		Features:      []string{"Emergency Service", "Experienced Staff", "Quality Materials", "Warranty on Work"},
	},
	{
		ID:            "srv_10",
		Name:          "Dream Interiors",
		Category:      "Home & Maintenance",
		SubcategoryID: "sub_home_2",
		Description:   "Complete interior design and renovation services. From concept to execution, we transform your space.",
		Image:         "https://picsum.photos/400/300?random=210",
		Rating:        4.8,
		Reviews:       98,
		Price:         "50,000",
		Location:      "Dahanu",
		Timing:        "10:00 AM - 6:00 PM",
		Features:      []string{"3D Design", "Turnkey Projects", "Custom Furniture", "Post-Project Support"},
	},
	// Food
	{
		ID:            "srv_11",
		Name:          "Spice Garden Restaurant",
		Category:      "Food & Beverages",
		SubcategoryID: "sub_food_1",
		Description:   "Multi-cuisine restaurant serving Indian, Chinese, and Continental dishes. Dine-in and home delivery available.",
		Image:         "https://picsum.photos/400/300?random=211",
		Rating:        4.4,
		Reviews:       567,
		Price:         "300",
		Location:      "Dahanu Beach Road",
		Timing:        "11:00 AM - 11:00 PM",
		Features:      []string{"Multi-Cuisine", "Home Delivery", "Party Orders", "Outdoor Seating"},
	},
	{
		ID:            "srv_12",
		Name:          "Cool Sips Cafe",
		Category:      "Food & Beverages",
		SubcategoryID: "sub_food_2",
		Description:   "Cozy cafe serving premium coffee, tea, shakes, and snacks. Perfect place to work or hang out.",
		Image:         "https://picsum.photos/400/300?random=212",
		Rating:        4.6,
		Reviews:       234,
		Price:         "150",
		Location:      "Dahanu Station Road",
		Timing:        "8:00 AM - 10:00 PM",
		Features:      []string{"Free WiFi", "AC Seating", "Fresh Beverages", "Light Snacks"},
	},
}
