// Package seed holds the sample catalog the portal ships with: a handful of Indian IT
// employers, their openings and a few starter courses.
package seed

import (
	"time"

	"github.com/ErlanBelekov/job-portal/internal/domain"
)

type Data struct {
	Companies []domain.Company
	Jobs      []domain.Job
	Courses   []domain.Course
}

func ptr[T any](v T) *T { return &v }

// Sample returns the sample catalog with timestamps relative to now.
func Sample(now time.Time) Data {
	companies := []domain.Company{
		{
			ID:          "accenture-id",
			Name:        "Accenture",
			Description: ptr("A leading global professional services company"),
			Website:     ptr("https://www.accenture.com"),
			LinkedinURL: ptr("https://www.linkedin.com/company/accenture"),
			Logo:        ptr("https://logoeps.com/wp-content/uploads/2014/05/36208-accenture-vector-logo.png"),
			Location:    ptr("Bengaluru, India"),
			CreatedAt:   now,
		},
		{
			ID:          "tcs-id",
			Name:        "Tata Consultancy Services",
			Description: ptr("An Indian multinational IT services and consulting company"),
			Website:     ptr("https://www.tcs.com"),
			LinkedinURL: ptr("https://www.linkedin.com/company/tata-consultancy-services"),
			Logo:        ptr("https://logoeps.com/wp-content/uploads/2013/03/tcs-vector-logo.png"),
			Location:    ptr("Mumbai, India"),
			CreatedAt:   now,
		},
		{
			ID:          "infosys-id",
			Name:        "Infosys",
			Description: ptr("A global leader in next-generation digital services and consulting"),
			Website:     ptr("https://www.infosys.com"),
			LinkedinURL: ptr("https://www.linkedin.com/company/infosys"),
			Logo:        ptr("https://logoeps.com/wp-content/uploads/2013/03/infosys-vector-logo.png"),
			Location:    ptr("Bengaluru, India"),
			CreatedAt:   now,
		},
	}

	jobs := []domain.Job{
		{
			ID:              "job-1",
			CompanyID:       "accenture-id",
			Title:           "Software Developer - Fresher",
			Description:     "Join our dynamic team as a Software Developer. Perfect opportunity for fresh graduates to kick-start their career in technology.",
			Requirements:    "Strong programming fundamentals, Problem-solving skills, Team collaboration",
			Qualifications:  "Bachelor's degree in Computer Science, IT, or related field. Good academic record with minimum 60% throughout academics.",
			Skills:          "Java, Python, JavaScript, SQL, Git, Problem-solving, Communication",
			ExperienceLevel: domain.ExperienceFresher,
			ExperienceMin:   ptr(0),
			ExperienceMax:   ptr(1),
			Location:        "Bengaluru, Chennai, Hyderabad",
			JobType:         "full-time",
			Salary:          ptr("₹3.5 - 4.5 LPA"),
			ApplyURL:        ptr("https://accenture.com/careers/apply"),
			ClosingDate:     now.Add(15 * 24 * time.Hour),
			BatchEligible:   ptr("2023, 2024"),
			IsActive:        true,
			CreatedAt:       now,
		},
		{
			ID:              "job-2",
			CompanyID:       "infosys-id",
			Title:           "Backend Developer",
			Description:     "Build scalable backend systems for global clients.",
			Requirements:    "Experience designing REST APIs, Relational databases",
			Qualifications:  "B.E./B.Tech or MCA",
			Skills:          "Node.js, Go, PostgreSQL, Docker",
			ExperienceLevel: domain.ExperienceExperienced,
			ExperienceMin:   ptr(2),
			ExperienceMax:   ptr(5),
			Location:        "Bangalore, Pune",
			JobType:         "full-time",
			Salary:          ptr("₹8 - 14 LPA"),
			ClosingDate:     now.Add(30 * 24 * time.Hour),
			IsActive:        true,
			CreatedAt:       now,
		},
	}

	courses := []domain.Course{
		{
			ID:          "python-course",
			Title:       "Python Programming for Beginners",
			Description: "Master Python programming from basics to advanced concepts.",
			Instructor:  ptr("Jane Smith"),
			Duration:    ptr("8 weeks"),
			Level:       ptr(domain.CourseBeginner),
			Category:    "programming",
			ImageURL:    ptr("/images/python-course.jpg"),
			CourseURL:   ptr("https://www.python.org/about/gettingstarted/"),
			Price:       ptr("₹2,999"),
			CreatedAt:   now,
		},
		{
			ID:          "react-course",
			Title:       "React Fundamentals",
			Description: "Learn React from scratch.",
			Instructor:  ptr("John Doe"),
			Duration:    ptr("4 weeks"),
			Level:       ptr(domain.CourseBeginner),
			Category:    "web-development",
			CreatedAt:   now,
		},
	}

	return Data{Companies: companies, Jobs: jobs, Courses: courses}
}
