package model

const (
	MinQueryLength = 2
	MaxSuggestions = 6
)

// Places is the built-in suggestion list served while no geocoding provider is configured.
var Places = []string{
	"Chhatrapati Shivaji Maharaj International Airport, Mumbai, Maharashtra",
	"Bandra West, Mumbai, Maharashtra",
	"Andheri East, Mumbai, Maharashtra",
	"Powai, Mumbai, Maharashtra",
	"Colaba, Mumbai, Maharashtra",
	"Juhu Beach, Mumbai, Maharashtra",
	"Gateway of India, Mumbai, Maharashtra",
	"Marine Drive, Mumbai, Maharashtra",
	"Worli, Mumbai, Maharashtra",
	"Lower Parel, Mumbai, Maharashtra",
	"Linking Road, Bandra West, Mumbai, Maharashtra",
	"Carter Road, Bandra West, Mumbai, Maharashtra",
	"Haji Ali, Mumbai, Maharashtra",
	"Siddhivinayak Temple, Prabhadevi, Mumbai, Maharashtra",
	"Phoenix Mills, Lower Parel, Mumbai, Maharashtra",
	"Palladium Mall, Lower Parel, Mumbai, Maharashtra",
	"Infinity Mall, Malad West, Mumbai, Maharashtra",
	"R City Mall, Ghatkopar West, Mumbai, Maharashtra",
	"Connaught Place, New Delhi, Delhi",
	"India Gate, New Delhi, Delhi",
	"Red Fort, Delhi, Delhi",
	"Chandni Chowk, Delhi, Delhi",
	"Karol Bagh, New Delhi, Delhi",
	"Lajpat Nagar, New Delhi, Delhi",
	"Saket, New Delhi, Delhi",
	"Gurgaon, Haryana",
	"Noida, Uttar Pradesh",
	"MG Road, Bangalore, Karnataka",
	"Brigade Road, Bangalore, Karnataka",
	"Koramangala, Bangalore, Karnataka",
	"Indiranagar, Bangalore, Karnataka",
	"Whitefield, Bangalore, Karnataka",
	"Electronic City, Bangalore, Karnataka",
	"FC Road, Pune, Maharashtra",
	"Koregaon Park, Pune, Maharashtra",
	"Hinjewadi, Pune, Maharashtra",
	"Baner, Pune, Maharashtra",
	"Hitech City, Hyderabad, Telangana",
	"Banjara Hills, Hyderabad, Telangana",
	"Jubilee Hills, Hyderabad, Telangana",
	"Gachibowli, Hyderabad, Telangana",
}
