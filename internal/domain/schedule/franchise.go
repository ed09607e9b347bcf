package schedule

// Franchise is the directory entry for one IPL team.
type Franchise struct {
	Code           string `json:"code"`
	Name           string `json:"name"`
	FullName       string `json:"full_name"`
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
	Championships  int    `json:"championships"`
	Captain        string `json:"captain"`
}

func Franchises() []Franchise {
	return []Franchise{
		{Code: "csk", Name: "CSK", FullName: "Chennai Super Kings", PrimaryColor: "#f7cd00", SecondaryColor: "#000000", Championships: 5, Captain: "MS Dhoni"},
		{Code: "mi", Name: "MI", FullName: "Mumbai Indians", PrimaryColor: "#004ba0", SecondaryColor: "#ffffff", Championships: 5, Captain: "Hardik Pandya"},
		{Code: "rcb", Name: "RCB", FullName: "Royal Challengers Bangalore", PrimaryColor: "#ec1c24", SecondaryColor: "#ffffff", Championships: 0, Captain: "Faf du Plessis"},
		{Code: "kkr", Name: "KKR", FullName: "Kolkata Knight Riders", PrimaryColor: "#3a225d", SecondaryColor: "#fdb913", Championships: 2, Captain: "Shreyas Iyer"},
		{Code: "dc", Name: "DC", FullName: "Delhi Capitals", PrimaryColor: "#0078bc", SecondaryColor: "#b4161b", Championships: 0, Captain: "Rishabh Pant"},
		{Code: "srh", Name: "SRH", FullName: "Sunrisers Hyderabad", PrimaryColor: "#ff822a", SecondaryColor: "#000000", Championships: 1, Captain: "Pat Cummins"},
		{Code: "rr", Name: "RR", FullName: "Rajasthan Royals", PrimaryColor: "#ff1d4d", SecondaryColor: "#004ba0", Championships: 1, Captain: "Sanju Samson"},
		{Code: "pbks", Name: "PBKS", FullName: "Punjab Kings", PrimaryColor: "#ed1b24", SecondaryColor: "#a4a4a4", Championships: 0, Captain: "Shikhar Dhawan"},
		{Code: "gt", Name: "GT", FullName: "Gujarat Titans", PrimaryColor: "#1d2951", SecondaryColor: "#00b0f0", Championships: 1, Captain: "Shubman Gill"},
		{Code: "lsg", Name: "LSG", FullName: "Lucknow Super Giants", PrimaryColor: "#a0e1fc", SecondaryColor: "#313f9f", Championships: 0, Captain: "KL Rahul"},
	}
}
