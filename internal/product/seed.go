package product

func strptr(s string) *string { return &s }

// SeedProducts returns the default CYRA catalog used when no database rows
// exist yet (and by the /dev/reset-products endpoint).
func SeedProducts() []Product {
	return []Product{
		{
			ID: "p1", Name: "Radiance Foam Cleanser", NameKm: strptr("សាប៊ូលាងមុខពន្លឺ"),
			Description:   "Gentle rice-water foam cleanser that removes impurities without stripping moisture.",
			DescriptionKm: strptr("សាប៊ូពពុះទឹកអង្ករ ទន់ភ្លន់ សម្អាតស្បែកដោយមិនធ្វើឱ្យស្ងួត។"),
			Price:         18.00, CostPrice: 7.50, Category: "Cleanser", CategoryKm: strptr("សាប៊ូលាងមុខ"),
			Image: "https://picsum.photos/id/21/600/600", Rating: 4.7, Reviews: 212,
		},
		{
			ID: "p2", Name: "Lotus Balancing Toner", NameKm: strptr("ទឹកថ្នាំផ្កាឈូក"),
			Description:   "Alcohol-free toner with Khmer lotus extract to rebalance skin pH after cleansing.",
			DescriptionKm: strptr("ទឹកថ្នាំគ្មានជាតិអាល់កុល ជាមួយចំរាញ់ផ្កាឈូកខ្មែរ។"),
			Price:         22.00, CostPrice: 9.00, Category: "Toner", CategoryKm: strptr("ទឹកថ្នាំ"),
			Image: "https://picsum.photos/id/22/600/600", Rating: 4.5, Reviews: 164,
		},
		{
			ID: "p3", Name: "Vitamin C Glow Serum", NameKm: strptr("សេរ៉ូមវីតាមីន C"),
			Description:   "10% stabilized vitamin C serum that fades dark spots and boosts radiance.",
			DescriptionKm: strptr("សេរ៉ូមវីតាមីន C 10% កាត់បន្ថយស្នាមខ្មៅ បង្កើនពន្លឺស្បែក។"),
			Price:         35.00, CostPrice: 14.00, Category: "Serum", CategoryKm: strptr("សេរ៉ូម"),
			Image: "https://picsum.photos/id/23/600/600", Rating: 4.9, Reviews: 388, IsNewArrival: true,
		},
		{
			ID: "p4", Name: "Hydra Gel Moisturizer", NameKm: strptr("ក្រែមផ្តល់សំណើម"),
			Description:   "Lightweight gel moisturizer with hyaluronic acid for all-day hydration.",
			DescriptionKm: strptr("ជែលផ្តល់សំណើមស្រាល ជាមួយអាស៊ីតហ្យាលុយរ៉ូនិក។"),
			Price:         28.00, CostPrice: 11.00, Category: "Moisturizer", CategoryKm: strptr("ក្រែមសំណើម"),
			Image: "https://picsum.photos/id/24/600/600", Rating: 4.6, Reviews: 251,
		},
		{
			ID: "p5", Name: "Silk Defense Sunscreen SPF50", NameKm: strptr("ឡេការពារកម្តៅថ្ងៃ SPF50"),
			Description:   "Invisible SPF50 sunscreen with a silky finish, no white cast.",
			DescriptionKm: strptr("ឡេការពារកម្តៅថ្ងៃ SPF50 មិនបន្សល់ស្នាមស។"),
			Price:         26.00, CostPrice: 10.50, Category: "Sunscreen", CategoryKm: strptr("ឡេការពារថ្ងៃ"),
			Image: "https://picsum.photos/id/25/600/600", Rating: 4.8, Reviews: 301,
		},
		{
			ID: "p6", Name: "Overnight Repair Mask", NameKm: strptr("ម៉ាសជួសជុលពេលយប់"),
			Description:   "Sleeping mask with ceramides that repairs the skin barrier overnight.",
			DescriptionKm: strptr("ម៉ាសគេងជាមួយសេរ៉ាមីត ជួសជុលរបាំងស្បែកពេលយប់។"),
			Price:         32.00, CostPrice: 13.00, Category: "Mask", CategoryKm: strptr("ម៉ាស"),
			Image: "https://picsum.photos/id/26/600/600", Rating: 4.4, Reviews: 97, IsNewArrival: true,
		},
		{
			ID: "p7", Name: "Night Cream Intense", NameKm: strptr("ក្រែមយប់"),
			Description:   "Rich night cream for dry skin, restores deep moisture while you sleep.",
			DescriptionKm: strptr("ក្រែមយប់សម្រាប់ស្បែកស្ងួត ស្តារសំណើមជ្រៅពេលគេង។"),
			Price:         38.00, CostPrice: 15.50, Category: "Moisturizer", CategoryKm: strptr("ក្រែមសំណើម"),
			Image: "https://picsum.photos/id/27/600/600", Rating: 4.8, Reviews: 276,
		},
		{
			ID: "p8", Name: "Jasmine Body Glow Oil", NameKm: strptr("ប្រេងលាបខ្លួនផ្កាម្លិះ"),
			Description:   "Fast-absorbing body oil with Khmer jasmine for a healthy glow.",
			DescriptionKm: strptr("ប្រេងលាបខ្លួនស្រូបលឿន ជាមួយផ្កាម្លិះខ្មែរ។"),
			Price:         24.00, CostPrice: 9.50, Category: "Body Care", CategoryKm: strptr("ថែទាំរាងកាយ"),
			Image: "https://picsum.photos/id/28/600/600", Rating: 4.3, Reviews: 88,
		},
	}
}
