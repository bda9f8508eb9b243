package jobsheet

import nt "jobsheet/entity"

// SampleRows returns the rows a fresh sheet is seeded with.
func SampleRows() []nt.Row {
	return []nt.Row{
		{
			JobRequest: "Launch social media campaign for product X",
			Submitted:  "15-11-2024",
			Status:     "In-process",
			Submitter:  "Aisha Patel",
			URL:        "www.aishapatel.com",
			Assigned:   "Sophie Choudhury",
			Priority:   "Medium",
			DueDate:    "20-11-2024",
			Extract:    "6,200,000",
		},
		{
			JobRequest: "Update press kit for company redesign",
			Submitted:  "28-10-2024",
			Status:     "Need to start",
			Submitter:  "Irfan Khan",
			URL:        "www.irfankhanprojects.com",
			Assigned:   "Tejas Pandey",
			Priority:   "High",
			DueDate:    "30-10-2024",
			Extract:    "3,500,000",
		},
		{
			JobRequest: "Finalize user testing feedback for app launch",
			Submitted:  "05-12-2024",
			Status:     "In-process",
			Submitter:  "Mark Johnson",
			URL:        "www.markjohnsonux.com",
			Assigned:   "Rachel Lee",
			Priority:   "Medium",
			DueDate:    "10-12-2024",
			Extract:    "4,750,000",
		},
		{
			JobRequest: "Design new features for the website",
			Submitted:  "10-01-2025",
			Status:     "Complete",
			Submitter:  "Emily Green",
			URL:        "www.emilygreenstudio.com",
			Assigned:   "Tom Wright",
			Priority:   "Low",
			DueDate:    "15-01-2025",
			Extract:    "5,900,000",
		},
		{
			JobRequest: "Prepare financial report for Q4",
			Submitted:  "25-01-2025",
			Status:     "Blocked",
			Submitter:  "Jessica Brown",
			URL:        "www.jessicabrownfinance.com",
			Assigned:   "Kevin Smith",
			Priority:   "Low",
			DueDate:    "30-01-2025",
			Extract:    "2,800,000",
		},
	}
}
