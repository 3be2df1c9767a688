package seed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/dcastillo/tablero-recursos/internal/dashboard"
	"github.com/dcastillo/tablero-recursos/internal/employee"
	"github.com/dcastillo/tablero-recursos/internal/history"
	"github.com/dcastillo/tablero-recursos/internal/project"
)

// Demo dataset for the dashboard. All randomness flows through the
// injected rand source so a fixed seed reproduces the exact same store;
// nothing here runs at package load time.

const hour = 60

type seedAssignment struct {
	projectID string
	assignedH int
	consumedH int
}

type weekPattern int

const (
	weekNone weekPattern = iota
	weekNormal
	weekOver
	weekUnder
)

type seedEmployee struct {
	id          string
	name        string
	role        string
	pattern     weekPattern
	assignments []seedAssignment
}

type seedProject struct {
	id          string
	name        string
	ptype       project.Type
	description string
	deadline    string
	status      project.Status
}

var seedEmployees = []seedEmployee{
	{"e1", "Ana García", "Frontend Dev", weekNormal, []seedAssignment{
		{"p1", 40, 35}, {"p2", 80, 70}, {"p12", 30, 15}, {"p22", 20, 25},
	}},
	{"e2", "Carlos Rodríguez", "Backend Dev", weekOver, []seedAssignment{
		{"p1", 40, 40}, {"p3", 90, 85}, {"p15", 35, 40},
	}},
	{"e3", "Javier López", "UI/UX Designer", weekNormal, []seedAssignment{
		{"p1", 20, 15}, {"p2", 60, 20}, {"p18", 50, 30}, {"p28", 25, 10},
	}},
	{"e4", "Sofía Martínez", "Project Manager", weekNormal, []seedAssignment{
		{"p1", 10, 8}, {"p2", 10, 9}, {"p3", 10, 10}, {"p4", 10, 5}, {"p11", 15, 15}, {"p21", 15, 10},
	}},
	{"e5", "David Pérez", "QA Engineer", weekNormal, []seedAssignment{
		{"p2", 40, 38}, {"p3", 70, 75}, {"p16", 50, 45},
	}},
	{"e6", "Lucía Fernández", "DevOps Engineer", weekNone, []seedAssignment{
		{"p5", 80, 70}, {"p6", 80, 90},
	}},
	{"e7", "Jorge González", "Backend Dev", weekNormal, []seedAssignment{
		{"p3", 60, 50}, {"p7", 70, 65}, {"p17", 25, 25},
	}},
	{"e8", "Elena Sánchez", "Frontend Dev", weekNormal, []seedAssignment{
		{"p8", 100, 80}, {"p18", 50, 40},
	}},
	{"e9", "Miguel Romero", "Data Scientist", weekUnder, []seedAssignment{
		{"p9", 120, 110}, {"p19", 30, 10},
	}},
	{"e10", "Isabel Díaz", "UI/UX Designer", weekNormal, []seedAssignment{
		{"p4", 40, 40}, {"p10", 90, 50}, {"p20", 20, 20},
	}},
	{"e11", "Ricardo Torres", "QA Engineer", weekNormal, []seedAssignment{
		{"p5", 30, 25}, {"p11", 60, 60}, {"p21", 60, 55},
	}},
	{"e12", "Laura Navarro", "Frontend Dev", weekNormal, []seedAssignment{
		{"p2", 40, 40}, {"p12", 80, 75}, {"p22", 30, 10},
	}},
	{"e13", "Adrián Ruiz", "Backend Dev", weekUnder, []seedAssignment{
		{"p6", 70, 80}, {"p13", 70, 60}, {"p23", 20, 15},
	}},
	{"e14", "Carmen Gil", "Project Manager", weekNormal, []seedAssignment{
		{"p5", 10, 10}, {"p10", 15, 12}, {"p15", 15, 15}, {"p20", 10, 8}, {"p25", 10, 5}, {"p30", 10, 10},
	}},
	{"e15", "Pablo Moreno", "DevOps Engineer", weekOver, []seedAssignment{
		{"p7", 50, 50}, {"p14", 80, 80}, {"p24", 30, 35},
	}},
}

var seedProjects = []seedProject{
	{"p1", "Platform Maintenance", project.Recurring, "Ongoing maintenance and bug fixes for the main platform.", "2024-12-31T23:59:59Z", project.OnTrack},
	{"p2", "New Feature Launch", project.OneTime, "Launch of the new AI-powered analytics module.", "2024-08-15T23:59:59Z", project.OnTrack},
	{"p3", "API Integration", project.OneTime, "Integration with a new third-party payment provider.", "2024-09-01T23:59:59Z", project.AtRisk},
	{"p4", "Marketing Website", project.Recurring, "Content updates and performance optimization for the marketing site.", "2024-12-31T23:59:59Z", project.OnTrack},
	{"p5", "CI/CD Pipeline Migration", project.OneTime, "Migrating the build and deployment pipeline to a new system.", "2024-07-30T23:59:59Z", project.Completed},
	{"p6", "Database Optimization", project.OneTime, "Optimizing slow queries and improving database performance.", "2024-09-20T23:59:59Z", project.OffTrack},
	{"p7", "System Monitoring Setup", project.Recurring, "Maintaining and improving system-wide monitoring and alerting.", "2024-12-31T23:59:59Z", project.OnTrack},
	{"p8", "Mobile App UI Redesign", project.OneTime, "A complete overhaul of the mobile application's user interface.", "2024-10-10T23:59:59Z", project.OnTrack},
	{"p9", "Sales Data Analysis", project.Recurring, "Quarterly analysis of sales data to identify trends.", "2024-12-31T23:59:59Z", project.OnTrack},
	{"p10", "Dashboard Component Library", project.OneTime, "Creating a reusable component library for internal dashboards.", "2024-11-01T23:59:59Z", project.AtRisk},
	{"p11", "Automated Testing Suite", project.OneTime, "Building an end-to-end automated testing suite.", "2024-08-25T23:59:59Z", project.OnTrack},
	{"p12", "Q3 Feature Development", project.OneTime, "Developing key features planned for the third quarter.", "2024-09-30T23:59:59Z", project.OnTrack},
	{"p13", "Legacy System Refactor", project.OneTime, "Refactoring a critical part of the legacy codebase.", "2024-12-01T23:59:59Z", project.OffTrack},
	{"p14", "Infrastructure Security Audit", project.Recurring, "Regular security audits of the production infrastructure.", "2024-12-31T23:59:59Z", project.OnTrack},
	{"p15", "User Authentication Microservice", project.OneTime, "Creating a new microservice for user authentication.", "2024-08-10T23:59:59Z", project.OnTrack},
	{"p16", "Performance Load Testing", project.OneTime, "Conducting load tests to ensure system scalability.", "2024-09-05T23:59:59Z", project.AtRisk},
	{"p17", "Billing System Maintenance", project.Recurring, "Routine maintenance for the customer billing system.", "2024-12-31T23:59:59Z", project.OnTrack},
	{"p18", "Onboarding UX Improvement", project.OneTime, "Improving the user experience for new customer onboarding.", "2024-10-15T23:59:59Z", project.OnTrack},
	{"p19", "Churn Prediction Model", project.OneTime, "Developing a machine learning model to predict customer churn.", "2024-11-20T23:59:59Z", project.OnTrack},
	{"p20", "Content Management System", project.Recurring, "Managing the internal Content Management System.", "2024-12-31T23:59:59Z", project.OnTrack},
	{"p21", "Release Hotfix 2.4.1", project.OneTime, "Urgent hotfix for a critical bug in production.", "2024-07-25T23:59:59Z", project.Completed},
	{"p22", "A/B Testing Framework", project.OneTime, "Building a framework for running A/B tests on the platform.", "2024-10-01T23:59:59Z", project.OnTrack},
	{"p23", "API Documentation Update", project.Recurring, "Keeping the public API documentation up to date.", "2024-12-31T23:59:59Z", project.OnTrack},
	{"p24", "Cloud Cost Optimization", project.Recurring, "Regularly reviewing and optimizing cloud infrastructure costs.", "2024-12-31T23:59:59Z", project.OnTrack},
	{"p25", "Client Demo Preparation", project.OneTime, "Preparing a product demo for a major potential client.", "2024-08-05T23:59:59Z", project.OnTrack},
	{"p26", "Analytics Dashboard", project.OneTime, "Creating a new analytics dashboard for the marketing team.", "2024-09-15T23:59:59Z", project.AtRisk},
	{"p27", "Error Reporting Service", project.Recurring, "Maintenance of the centralized error reporting service.", "2024-12-31T23:59:59Z", project.OnTrack},
	{"p28", "Design System Governance", project.Recurring, "Governing and updating the company-wide design system.", "2022-12-31T23:59:59Z", project.OnTrack},
	{"p29", "Mobile App Push Notifications", project.OneTime, "Implementing a push notification system for the mobile app.", "2024-09-10T23:59:59Z", project.OnTrack},
	{"p30", "Q4 Roadmap Planning", project.OneTime, "Planning the product and engineering roadmap for the fourth quarter.", "2024-09-30T23:59:59Z", project.OnTrack},
}

// Projects seeded without any logged activity in the current week.
var projectsWithoutActivity = map[string]bool{
	"p13": true,
	"p26": true,
}

// New builds a fully formed, invariant-satisfying store: every assignment
// references an existing project, and each project's tasks are generated
// so their per-employee sums equal the assignment targets exactly.
func New(rng *rand.Rand) dashboard.Store {
	now := time.Now()

	store := dashboard.Store{
		Employees: make([]employee.Employee, 0, len(seedEmployees)),
		Projects:  make([]project.Project, 0, len(seedProjects)),
	}

	for _, se := range seedEmployees {
		assignments := make([]employee.Assignment, 0, len(se.assignments))
		for _, a := range se.assignments {
			assignments = append(assignments, employee.Assignment{
				ProjectID:     a.projectID,
				AssignedHours: a.assignedH * hour,
				ConsumedHours: a.consumedH * hour,
			})
		}
		store.Employees = append(store.Employees, employee.Employee{
			ID:              se.id,
			Name:            se.name,
			Avatar:          "https://i.pravatar.cc/150?u=" + se.id,
			Role:            se.role,
			TotalHoursMonth: 160 * hour,
			Projects:        assignments,
			HistoricalData:  employeeHistory(rng, now),
			LastWeekHours:   lastWeekHours(rng, se.pattern),
		})
	}

	for _, sp := range seedProjects {
		deadline, err := time.Parse(time.RFC3339, sp.deadline)
		if err != nil {
			panic(fmt.Sprintf("seed: bad deadline for %s: %v", sp.id, err))
		}
		store.Projects = append(store.Projects, project.Project{
			ID:                  sp.id,
			Name:                sp.name,
			Type:                sp.ptype,
			Description:         sp.description,
			Deadline:            deadline,
			Status:              sp.status,
			Tasks:               tasksForProject(rng, sp),
			HistoricalData:      projectHistory(rng, now),
			HasActivityThisWeek: !projectsWithoutActivity[sp.id],
		})
	}

	return store
}

// tasksForProject splits each team member's assignment targets across one
// to three tasks, so the task-derived sums match the seeded assignment
// record by construction.
func tasksForProject(rng *rand.Rand, sp seedProject) []project.Task {
	var tasks []project.Task
	seq := 1
	for _, se := range seedEmployees {
		for _, a := range se.assignments {
			if a.projectID != sp.id {
				continue
			}
			parts := 1 + rng.Intn(3)
			assigned := split(rng, a.assignedH*hour, parts)
			consumed := split(rng, a.consumedH*hour, parts)
			for i := 0; i < parts; i++ {
				tasks = append(tasks, project.Task{
					ID:            fmt.Sprintf("%s-t%d", sp.id, seq),
					Name:          fmt.Sprintf("Tarea %d de %s", seq, sp.name),
					Status:        taskStatus(assigned[i], consumed[i]),
					AssignedTo:    se.id,
					AssignedHours: assigned[i],
					ConsumedHours: consumed[i],
				})
				seq++
			}
		}
	}
	return tasks
}

func taskStatus(assigned, consumed int) project.TaskStatus {
	switch {
	case assigned > 0 && consumed >= assigned:
		return project.TaskCompleted
	case consumed > 0:
		return project.TaskInProgress
	default:
		return project.TaskToDo
	}
}

// split partitions total into parts non-negative integers summing to
// total.
func split(rng *rand.Rand, total, parts int) []int {
	out := make([]int, parts)
	remaining := total
	for i := 0; i < parts-1; i++ {
		share := 0
		if remaining > 0 {
			share = rng.Intn(remaining + 1)
		}
		out[i] = share
		remaining -= share
	}
	out[parts-1] = remaining
	return out
}

func lastWeekHours(rng *rand.Rand, p weekPattern) [employee.LastWeekDays]int {
	switch p {
	case weekNone:
		return [employee.LastWeekDays]int{}
	case weekUnder:
		return [employee.LastWeekDays]int{
			(rng.Intn(2) + 3) * hour,
			(rng.Intn(3) + 3) * hour,
			(rng.Intn(3) + 4) * hour,
			(rng.Intn(2) + 4) * hour,
			(rng.Intn(2) + 3) * hour,
		}
	case weekOver:
		return [employee.LastWeekDays]int{
			(rng.Intn(2) + 8) * hour,
			(rng.Intn(2) + 9) * hour,
			8 * hour,
			(rng.Intn(3) + 8) * hour,
			(rng.Intn(2) + 9) * hour,
		}
	default:
		return [employee.LastWeekDays]int{8 * hour, 7 * hour, 8 * hour, 9 * hour, 8 * hour}
	}
}

func employeeHistory(rng *rand.Rand, now time.Time) []history.Entry {
	months := history.PastSixMonths(now)
	entries := make([]history.Entry, 0, len(months))
	for _, m := range months {
		assigned := (140 + rng.Intn(20)) * hour
		consumed := int(float64(assigned) * (0.8 + rng.Float64()*0.3))
		entries = append(entries, history.Entry{
			Month:              m,
			AssignedHours:      assigned,
			ConsumedHours:      consumed,
			GoalCompletionRate: 70 + rng.Intn(31),
		})
	}
	return entries
}

func projectHistory(rng *rand.Rand, now time.Time) []history.Entry {
	months := history.PastSixMonths(now)
	entries := make([]history.Entry, 0, len(months))
	for _, m := range months {
		assigned := (150 + rng.Intn(100)) * hour
		consumed := int(float64(assigned) * (0.7 + rng.Float64()*0.4))
		entries = append(entries, history.Entry{
			Month:              m,
			AssignedHours:      assigned,
			ConsumedHours:      consumed,
			GoalCompletionRate: 70 + rng.Intn(31),
		})
	}
	return entries
}
