package main

import (
	"fmt"
	"log"
	"math/rand"

	"pmportal/internship-matcher/internal/config"
	"pmportal/internship-matcher/internal/models"
	"pmportal/internship-matcher/internal/repositories"
)

var departments = []models.Department{
	{
		Name:           "National e-Governance Division",
		Email:          "negd@meity.gov.in",
		Ministry:       "Ministry of Electronics and IT",
		DepartmentType: "Central",
		Location:       "New Delhi, Delhi",
		ContactPerson:  "Rakesh Sharma",
		ContactPhone:   "9876543210",
		Description:    "Works on implementing Digital India initiatives.",
		IsActive:       true,
	},
	{
		Name:           "Department of Higher Education",
		Email:          "dhe@mhrd.gov.in",
		Ministry:       "Ministry of Education",
		DepartmentType: "Central",
		Location:       "New Delhi, Delhi",
		ContactPerson:  "Anjali Verma",
		ContactPhone:   "9876501234",
		Description:    "Handles policy-making and research in higher education.",
		IsActive:       true,
	},
	{
		Name:           "Department of Health Research",
		Email:          "dhr@mohfw.gov.in",
		Ministry:       "Ministry of Health and Family Welfare",
		DepartmentType: "Central",
		Location:       "Pune, Maharashtra",
		ContactPerson:  "Dr. Vivek Joshi",
		ContactPhone:   "9811122233",
		Description:    "Promotes and funds health research in medical institutions.",
		IsActive:       true,
	},
	{
		Name:           "Department of Renewable Energy",
		Email:          "dre@mnre.gov.in",
		Ministry:       "Ministry of New and Renewable Energy",
		DepartmentType: "Central",
		Location:       "Bengaluru, Karnataka",
		ContactPerson:  "Priya Nair",
		ContactPhone:   "9823345567",
		Description:    "Develops policies for solar, wind, and renewable energy.",
		IsActive:       true,
	},
	{
		Name:           "Department of Skill Development & Entrepreneurship",
		Email:          "dsde@msde.gov.in",
		Ministry:       "Ministry of Skill Development and Entrepreneurship",
		DepartmentType: "Central",
		Location:       "Lucknow, Uttar Pradesh",
		ContactPerson:  "Amit Kumar",
		ContactPhone:   "9812233445",
		Description:    "Focuses on skilling programs and entrepreneurship development.",
		IsActive:       true,
	},
}

var (
	titles = []string{
		"Research Intern", "Policy Analyst Intern", "Software Developer Intern",
		"AI Research Intern", "Data Science Intern", "Sustainability Analyst",
		"Community Outreach Intern", "Design Intern", "Business Analyst Intern",
		"Cybersecurity Intern", "Renewable Energy Analyst", "Transport Planning Intern",
	}

	skillSets = []string{
		"Python, SQL, Data Analysis", "Research, Writing, Communication",
		"Java, Spring Boot, APIs", "Machine Learning, Deep Learning",
		"Cloud Computing, AWS", "Policy Research, Economics",
		"Renewable Energy, Solar", "IoT, Sensors, Smart Devices",
		"GIS Mapping, Urban Planning", "Excel, Business Analytics",
	}

	courses = []string{
		"Computer Science", "Economics", "Public Policy",
		"Electrical Engineering", "Mechanical Engineering", "Environmental Science",
		"Data Science", "Civil Engineering", "Business Administration",
	}

	locations = []string{
		"New Delhi", "Mumbai", "Bengaluru", "Chennai",
		"Pune", "Lucknow", "Jaipur", "Kolkata", "Hyderabad",
	}

	sectors = []string{
		"Technology", "Policy", "Healthcare", "Energy", "Environment", "Transport",
	}

	yearRequirements = []string{"2nd Year", "3rd Year", "Final Year", "any"}
)

func main() {
	cfg := config.Load()

	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	internshipRepo := repositories.NewInternshipRepository(db)
	studentRepo := repositories.NewStudentRepository(db)

	seededDepartments := 0
	for i := range departments {
		dept := departments[i]

		var count int64
		db.Model(&models.Department{}).Where("email = ?", dept.Email).Count(&count)
		if count > 0 {
			continue
		}

		if err := db.Create(&dept).Error; err != nil {
			log.Fatalf("failed to seed department %s: %v", dept.Name, err)
		}
		departments[i] = dept
		seededDepartments++

		// 10 internships per department
		for j := 0; j < 10; j++ {
			title := titles[rand.Intn(len(titles))]
			internship := &models.Internship{
				DepartmentID:           dept.ID,
				Title:                  fmt.Sprintf("%s #%d", title, j+1),
				Description:            fmt.Sprintf("%s role at %s.", title, dept.Name),
				Sector:                 sectors[rand.Intn(len(sectors))],
				Location:               locations[rand.Intn(len(locations))],
				RequiredSkills:         skillSets[rand.Intn(len(skillSets))],
				PreferredCourse:        courses[rand.Intn(len(courses))],
				MinCGPA:                6.0 + rand.Float64()*2.5,
				YearOfStudyRequirement: yearRequirements[rand.Intn(len(yearRequirements))],
				TotalPositions:         2 + rand.Intn(9),
				DurationMonths:         2 + rand.Intn(5),
				Stipend:                []float64{5000, 8000, 10000, 12000}[rand.Intn(4)],
				RuralQuota:             rand.Intn(3),
				SCQuota:                rand.Intn(2),
				STQuota:                rand.Intn(2),
				OBCQuota:               rand.Intn(3),
				IsActive:               true,
			}
			if err := internshipRepo.Create(internship); err != nil {
				log.Fatalf("failed to seed internship: %v", err)
			}
		}
	}
	log.Printf("%d departments seeded with internships", seededDepartments)

	students := []models.Student{
		{
			Name:               "Ananya Iyer",
			Email:              "ananya.iyer@example.com",
			Institution:        "IIT Madras",
			Course:             "Computer Science",
			YearOfStudy:        3,
			CGPA:               8.7,
			TechnicalSkills:    "Python, SQL, Machine Learning",
			SoftSkills:         "Communication, Teamwork",
			SectorInterests:    "Technology, Policy",
			PreferredLocations: "Chennai, Bengaluru",
			CurrentLocation:    "Chennai",
			SocialCategory:     "General",
			DistrictType:       "Urban",
			HomeDistrict:       "Chennai",
		},
		{
			Name:                "Ravi Meena",
			Email:               "ravi.meena@example.com",
			Institution:         "NIT Jaipur",
			Course:              "Electrical Engineering",
			YearOfStudy:         4,
			CGPA:                7.4,
			TechnicalSkills:     "IoT, Sensors, Renewable Energy",
			SoftSkills:          "Writing, Research",
			SectorInterests:     "Energy, Environment",
			PreferredLocations:  "Jaipur, New Delhi",
			CurrentLocation:     "Jaipur",
			SocialCategory:      "ST",
			DistrictType:        "Rural",
			HomeDistrict:        "Dausa",
			PreviousInternships: 1,
		},
		{
			Name:               "Sana Shaikh",
			Email:              "sana.shaikh@example.com",
			Institution:        "Pune University",
			Course:             "Public Policy",
			YearOfStudy:        2,
			CGPA:               8.1,
			TechnicalSkills:    "Policy Research, Economics, Writing",
			SoftSkills:         "Communication",
			SectorInterests:    "Policy, Education",
			PreferredLocations: "Pune, Mumbai",
			CurrentLocation:    "Pune",
			SocialCategory:     "OBC",
			DistrictType:       "Aspirational",
			HomeDistrict:       "Osmanabad",
		},
	}

	seededStudents := 0
	for i := range students {
		var count int64
		db.Model(&models.Student{}).Where("email = ?", students[i].Email).Count(&count)
		if count > 0 {
			continue
		}
		if err := studentRepo.Create(&students[i]); err != nil {
			log.Fatalf("failed to seed student: %v", err)
		}
		seededStudents++
	}
	log.Printf("%d students seeded", seededStudents)

	log.Println("demo data seeded successfully")
}
