package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/teamupapp/teamup/internal/api"
)

// LoginInput holds the credentials collected by the login form
type LoginInput struct {
	Login    string
	Password string
}

// LoginForm collects login credentials interactively
func LoginForm() (*LoginInput, error) {
	var in LoginInput

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Username or email").
			Validate(requireValue("login")).
			Value(&in.Login),
		huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Validate(requireValue("password")).
			Value(&in.Password),
	))

	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("login form failed: %w", err)
	}
	return &in, nil
}

// RegisterForm collects registration data interactively
func RegisterForm() (*api.RegisterRequest, error) {
	var req api.RegisterRequest

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Username").
			Validate(requireValue("username")).
			Value(&req.Username),
		huh.NewInput().
			Title("Email").
			Validate(validateEmail).
			Value(&req.Email),
		huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Validate(validatePassword).
			Value(&req.Password),
		huh.NewInput().
			Title("Phone number").
			Value(&req.PhoneNumber),
	))

	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("registration form failed: %w", err)
	}
	return &req, nil
}

// ProjectForm collects project fields, pre-filled with initial values when editing
func ProjectForm(initial api.ProjectRequest) (*api.ProjectRequest, error) {
	req := initial
	skills := JoinList(initial.RequiredSkills)
	team := JoinList(initial.Team)

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Project name").
			Validate(requireValue("name")).
			Value(&req.Name),
		huh.NewInput().
			Title("Type").
			Description("e.g. startup, hackathon, coursework").
			Value(&req.Type),
		huh.NewInput().
			Title("Sphere").
			Description("e.g. education, fintech, robotics").
			Value(&req.Sphere),
		huh.NewText().
			Title("Description").
			Value(&req.Description),
		huh.NewInput().
			Title("Required skills").
			Description("comma-separated").
			Value(&skills),
		huh.NewInput().
			Title("Open roles").
			Description("comma-separated").
			Value(&team),
		huh.NewInput().
			Title("Location").
			Value(&req.Location),
	))

	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("project form failed: %w", err)
	}

	req.RequiredSkills = SplitList(skills)
	req.Team = SplitList(team)
	return &req, nil
}

// ProfileForm collects profile edits pre-filled from the current identity
func ProfileForm(current *api.User) (*api.ProfileUpdate, error) {
	fullName := current.FullName
	age := ""
	if current.Age > 0 {
		age = strconv.Itoa(current.Age)
	}
	skills := JoinList(current.Skills)
	bio := current.Bio
	location := current.Location
	phone := current.Phone
	telegram := current.Telegram
	instagram := current.Instagram

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Full name").Value(&fullName),
		huh.NewInput().Title("Age").Validate(validateAge).Value(&age),
		huh.NewInput().Title("Skills").Description("comma-separated").Value(&skills),
		huh.NewText().Title("Bio").Value(&bio),
		huh.NewInput().Title("Location").Value(&location),
		huh.NewInput().Title("Phone").Value(&phone),
		huh.NewInput().Title("Telegram").Value(&telegram),
		huh.NewInput().Title("Instagram").Value(&instagram),
	))

	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("profile form failed: %w", err)
	}

	update := api.ProfileUpdate{
		FullName:  &fullName,
		Skills:    SplitList(skills),
		Bio:       &bio,
		Location:  &location,
		Phone:     &phone,
		Telegram:  &telegram,
		Instagram: &instagram,
	}
	if age != "" {
		if n, err := strconv.Atoi(age); err == nil {
			update.Age = &n
		}
	}
	return &update, nil
}

// SplitList splits a comma-separated input into trimmed, non-empty items
func SplitList(s string) []string {
	var items []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

// JoinList renders a list back into comma-separated form-field text
func JoinList(items []string) string {
	return strings.Join(items, ", ")
}

func requireValue(name string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", name)
		}
		return nil
	}
}

func validateEmail(s string) error {
	if !strings.Contains(s, "@") || strings.HasPrefix(s, "@") || strings.HasSuffix(s, "@") {
		return fmt.Errorf("enter a valid email address")
	}
	return nil
}

func validatePassword(s string) error {
	if len(s) < 6 {
		return fmt.Errorf("password must be at least 6 characters")
	}
	return nil
}

func validateAge(s string) error {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 150 {
		return fmt.Errorf("enter a valid age")
	}
	return nil
}
