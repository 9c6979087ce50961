package postgres

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"family-planner/domain/models"
)

// Seed fills an empty database with the household members and a starter week
// of chores. Running it against a non-empty database is a no-op, so it is
// safe to call on every startup of the seed tool.
func Seed(db *gorm.DB) error {
	byRole, err := seedUsers(db)
	if err != nil {
		return err
	}
	return seedTasks(db, byRole)
}

func seedUsers(db *gorm.DB) (map[models.Role]uint, error) {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return nil, err
	}

	if count == 0 {
		users := []models.User{
			{Name: "Mom", Email: "mom@example.com", Role: models.RoleMom},
			{Name: "Dad", Email: "dad@example.com", Role: models.RoleDad},
			{Name: "Alex", Email: "alex@example.com", Role: models.RoleChildMale},
			{Name: "Sam", Email: "sam@example.com", Role: models.RoleChildFemale},
		}
		if err := db.Create(&users).Error; err != nil {
			return nil, fmt.Errorf("failed to seed users: %w", err)
		}
	}

	var users []models.User
	if err := db.Find(&users).Error; err != nil {
		return nil, err
	}

	byRole := make(map[models.Role]uint, len(users))
	for _, u := range users {
		byRole[u.Role] = u.ID
	}
	return byRole, nil
}

func seedTasks(db *gorm.DB, byRole map[models.Role]uint) error {
	var count int64
	if err := db.Model(&models.Task{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	assignee := func(role models.Role) *uint {
		if id, ok := byRole[role]; ok {
			return &id
		}
		return nil
	}

	day15 := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	day14 := time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC)

	tasks := []models.Task{
		{
			Title:            "Grocery Shopping",
			Description:      "Get groceries for the week",
			DueDay:           models.Monday,
			Priority:         models.PriorityHigh,
			Status:           models.StatusTodo,
			AssignedToUserID: assignee(models.RoleMom),
			CreatedAt:        day15,
		},
		{
			Title:       "Take Out Trash",
			Description: "Empty all trash bins and take to curb",
			DueDay:      models.Tuesday,
			Priority:    models.PriorityMedium,
			Status:      models.StatusTodo,
			CreatedAt:   day15,
		},
		{
			Title:            "Soccer Practice",
			Description:      "Drop off Alex at soccer practice",
			DueDay:           models.Wednesday,
			Priority:         models.PriorityHigh,
			Status:           models.StatusTodo,
			AssignedToUserID: assignee(models.RoleDad),
			CreatedAt:        day15,
		},
		{
			Title:            "Vacuum Living Room",
			Description:      "Vacuum the main living areas",
			DueDay:           models.Thursday,
			Priority:         models.PriorityLow,
			Status:           models.StatusDone,
			AssignedToUserID: assignee(models.RoleChildFemale),
			CreatedAt:        day14,
		},
		{
			Title:            "Laundry",
			Description:      "Wash, dry, and fold clothes",
			DueDay:           models.Friday,
			Priority:         models.PriorityMedium,
			Status:           models.StatusDoing,
			AssignedToUserID: assignee(models.RoleMom),
			CreatedAt:        day15,
		},
		{
			Title:       "Water Plants",
			Description: "Water all indoor and outdoor plants",
			DueDay:      models.Saturday,
			Priority:    models.PriorityLow,
			Status:      models.StatusTodo,
			CreatedAt:   day15,
		},
		{
			Title:            "Family Game Night",
			Description:      "Set up games and snacks for family time",
			DueDay:           models.Sunday,
			Priority:         models.PriorityMedium,
			Status:           models.StatusTodo,
			AssignedToUserID: assignee(models.RoleChildMale),
			CreatedAt:        day15,
		},
		{
			Title:       "Clean Kitchen",
			Description: "Deep clean counters, appliances, and floor",
			DueDay:      models.Monday,
			Priority:    models.PriorityMedium,
			Status:      models.StatusTodo,
			CreatedAt:   day15,
		},
	}

	if err := db.Create(&tasks).Error; err != nil {
		return fmt.Errorf("failed to seed tasks: %w", err)
	}
	return nil
}
