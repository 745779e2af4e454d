package demo

import "time"

// Lead is a prospect in the sales pipeline.
type Lead struct {
	Name    string
	Company string
	Email   string
	Value   float64
	Status  string
	Created time.Time
}

// Leads returns the demo lead book. Values span an order of magnitude
// so that sorting the money column is visibly numeric, not lexical.
func Leads() []Lead {
	return []Lead{
		{"Omar Haddad", "Northwind Traders", "omar@northwind.test", 12400, "Qualified", day(2026, time.August, 3)},
		{"Ava Lindqvist", "Fabrikam", "ava@fabrikam.test", 2150, "New", day(2026, time.August, 18)},
		{"Priya Raman", "Contoso", "priya@contoso.test", 48200, "Contacted", day(2026, time.July, 29)},
		{"Diego Fuentes", "Tailspin Toys", "diego@tailspin.test", 9800, "New", day(2026, time.August, 14)},
		{"Hanna Keller", "Wingtip Toys", "hanna@wingtip.test", 125000, "Qualified", day(2026, time.June, 30)},
		{"Tomi Akintola", "Proseware", "tomi@proseware.test", 3600, "Won", day(2026, time.August, 20)},
	}
}

// Deal is an opportunity that made it past qualification.
type Deal struct {
	Company string
	Stage   string
	Value   float64
	Closes  time.Time
}

// Deals returns the open opportunities shown on the deals page.
func Deals() []Deal {
	return []Deal{
		{"Northwind Traders", "Proposal", 12400, day(2026, time.September, 15)},
		{"Contoso", "Negotiation", 48200, day(2026, time.September, 4)},
		{"Wingtip Toys", "Contract", 125000, day(2026, time.August, 28)},
		{"Adventure Works", "Proposal", 7300, day(2026, time.October, 2)},
	}
}

// Contact is an address-book entry.
type Contact struct {
	Name    string
	Company string
	Email   string
	Phone   string
}

// Contacts returns the demo address book.
func Contacts() []Contact {
	return []Contact{
		{"Omar Haddad", "Northwind Traders", "omar@northwind.test", "+1 555 0141"},
		{"Ava Lindqvist", "Fabrikam", "ava@fabrikam.test", "+46 8 5550 123"},
		{"Priya Raman", "Contoso", "priya@contoso.test", "+1 555 0178"},
		{"Hanna Keller", "Wingtip Toys", "hanna@wingtip.test", "+49 30 555 0199"},
		{"Marcus Webb", "Adventure Works", "marcus@adventure.test", "+1 555 0102"},
	}
}

// Employee is a staff record.
type Employee struct {
	Name       string
	Department string
	Role       string
	Salary     float64
	Joined     time.Time
}

// Employees returns the demo staff roster.
func Employees() []Employee {
	return []Employee{
		{"Jess Moreno", "Sales", "Account Executive", 78000, day(2023, time.March, 6)},
		{"Ruth Okafor", "Engineering", "Backend Engineer", 112000, day(2022, time.November, 14)},
		{"Sam Whitfield", "Sales", "SDR", 54000, day(2025, time.January, 20)},
		{"Ines Moreau", "Engineering", "Platform Lead", 134000, day(2021, time.June, 1)},
		{"Kenji Sato", "Finance", "Controller", 98000, day(2024, time.February, 12)},
		{"Lena Baptiste", "People", "HR Generalist", 67000, day(2024, time.September, 9)},
	}
}

// Attendance is one day of one employee's timesheet.
type Attendance struct {
	Name   string
	Date   time.Time
	Status string
}

// AttendanceLog returns the current week's attendance entries.
func AttendanceLog() []Attendance {
	return []Attendance{
		{"Jess Moreno", day(2026, time.August, 21), "Present"},
		{"Ruth Okafor", day(2026, time.August, 21), "Remote"},
		{"Sam Whitfield", day(2026, time.August, 21), "Present"},
		{"Ines Moreau", day(2026, time.August, 21), "Leave"},
		{"Kenji Sato", day(2026, time.August, 21), "Present"},
		{"Lena Baptiste", day(2026, time.August, 21), "Remote"},
	}
}

// PayrollEntry is one month of one employee's pay.
type PayrollEntry struct {
	Name  string
	Month string
	Gross float64
	Net   float64
}

// PayrollRun returns the most recent payroll run.
func PayrollRun() []PayrollEntry {
	return []PayrollEntry{
		{"Jess Moreno", "July 2026", 6500, 4890},
		{"Ruth Okafor", "July 2026", 9333.33, 6766.20},
		{"Sam Whitfield", "July 2026", 4500, 3510},
		{"Ines Moreau", "July 2026", 11166.67, 7928.34},
		{"Kenji Sato", "July 2026", 8166.67, 6043.34},
		{"Lena Baptiste", "July 2026", 5583.33, 4299.16},
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
