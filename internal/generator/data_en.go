package generator

var enMaleFirstNames = []string{
	"James", "Robert", "John", "Michael", "David", "William", "Richard", "Joseph",
	"Thomas", "Charles", "Christopher", "Daniel", "Matthew", "Anthony", "Mark", "Donald",
	"Steven", "Paul", "Andrew", "Joshua", "Kenneth", "Kevin", "Brian", "George",
	"Timothy", "Ronald", "Edward", "Jason", "Jeffrey", "Ryan", "Jacob", "Gary",
	"Nicholas", "Eric", "Jonathan", "Stephen", "Larry", "Justin", "Scott", "Brandon",
	"Benjamin", "Samuel", "Raymond", "Gregory", "Frank", "Alexander", "Patrick", "Jack",
	"Dennis", "Jerry",
}

var enFemaleFirstNames = []string{
	"Mary", "Patricia", "Jennifer", "Linda", "Elizabeth", "Barbara", "Susan", "Jessica",
	"Sarah", "Karen", "Lisa", "Nancy", "Betty", "Margaret", "Sandra", "Ashley",
	"Kimberly", "Emily", "Donna", "Michelle", "Carol", "Amanda", "Dorothy", "Melissa",
	"Deborah", "Stephanie", "Rebecca", "Sharon", "Laura", "Cynthia", "Kathleen", "Amy",
	"Angela", "Shirley", "Anna", "Brenda", "Pamela", "Emma", "Nicole", "Helen",
	"Samantha", "Katherine", "Christine", "Debra", "Rachel", "Carolyn", "Janet", "Catherine",
	"Maria", "Heather",
}

var enLastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
	"Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson", "Thomas",
	"Taylor", "Moore", "Jackson", "Martin", "Lee", "Perez", "Thompson", "White",
	"Harris", "Sanchez", "Clark", "Ramirez", "Lewis", "Robinson", "Walker", "Young",
	"Allen", "King", "Wright", "Scott", "Torres", "Nguyen", "Hill", "Flores",
	"Green", "Adams", "Nelson", "Baker", "Hall", "Rivera", "Campbell", "Mitchell",
	"Carter", "Roberts",
}

var enJobs = []string{
	"Software Engineer", "Accountant", "Registered Nurse", "Teacher", "Pharmacist",
	"Civil Engineer", "Graphic Designer", "Project Manager", "Electrician", "Lawyer",
	"Data Analyst", "Marketing Specialist", "Dentist", "Architect", "Journalist",
	"Translator", "Sales Manager", "HR Specialist", "Physician", "Pilot",
	"Chef", "Librarian", "Mechanical Engineer", "Financial Advisor", "Veterinarian",
	"Social Worker", "Photographer", "Research Scientist", "Plumber", "Web Developer",
}

var enCities = []string{
	"New York", "Los Angeles", "Chicago", "Houston", "Phoenix",
	"Philadelphia", "San Antonio", "San Diego", "Dallas", "San Jose",
	"Austin", "Jacksonville", "Fort Worth", "Columbus", "Indianapolis",
	"Charlotte", "San Francisco", "Seattle", "Denver", "Nashville",
	"Boston", "Portland", "Las Vegas", "Memphis", "Baltimore",
	"Milwaukee", "Sacramento", "Atlanta", "Miami", "Minneapolis",
}

var enStates = []string{
	"AL", "AZ", "CA", "CO", "FL", "GA", "IL", "IN", "MA", "MD",
	"MI", "MN", "MO", "NC", "NJ", "NV", "NY", "OH", "OR", "PA",
	"TN", "TX", "VA", "WA", "WI",
}

var enStreetNames = []string{
	"Main", "Oak", "Maple", "Cedar", "Elm", "Pine", "Walnut", "Lake",
	"Hill", "Washington", "Park", "River", "Spring", "Church", "High",
	"Meadow", "Forest", "Sunset", "Valley", "Lincoln", "Willow", "Birch",
	"Madison", "Franklin", "Jefferson", "Cherry", "Chestnut", "Magnolia",
	"Market", "Liberty",
}

var enStreetSuffixes = []string{
	"St", "Ave", "Blvd", "Dr", "Ln", "Ct", "Pl", "Way", "Rd", "Cir",
}

var enEmailDomains = []string{
	"example.com", "example.org", "example.net", "mail.example.com",
}

// шаблоны номеров с вымышленным кодом 555, # заменяется цифрой
var enPhoneFormats = []string{
	"(555) ###-####",
	"555-###-####",
	"+1-555-###-####",
	"555.###.####",
	"(555) ###-#### x###",
}
