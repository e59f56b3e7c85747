package ux

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/teamupapp/teamup/internal/api"
	"github.com/teamupapp/teamup/internal/authz"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	labelStyle  = lipgloss.NewStyle().Faint(true)
	ownerBadge  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	memberBadge = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
)

// RoleBadge renders a colored badge for a non-guest role, empty for guests
func RoleBadge(role authz.Role) string {
	switch role {
	case authz.RoleOwner:
		return ownerBadge.Render("[owner]")
	case authz.RoleMember:
		return memberBadge.Render("[member]")
	default:
		return ""
	}
}

func field(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "%s %s\n", labelStyle.Render(label+":"), value)
}

// RenderProject renders a project detail view, badged with the viewer's role
func RenderProject(p *api.Project, role authz.Role) string {
	var b strings.Builder

	header := titleStyle.Render(p.Name)
	if badge := RoleBadge(role); badge != "" {
		header += " " + badge
	}
	b.WriteString(header + "\n")

	field(&b, "ID", p.ID.String())
	field(&b, "Type", p.Type)
	field(&b, "Sphere", p.Sphere)
	field(&b, "Location", p.Location)
	field(&b, "Skills", strings.Join(p.RequiredSkills, ", "))
	field(&b, "Open roles", strings.Join(p.Team, ", "))
	field(&b, "Owner", userLine(p.Owner))
	if !p.CreatedAt.IsZero() {
		field(&b, "Created", p.CreatedAt.Format("2006-01-02"))
	}

	if p.Description != "" {
		b.WriteString("\n" + p.Description + "\n")
	}

	if len(p.Members) > 0 {
		fmt.Fprintf(&b, "\n%s\n", labelStyle.Render(fmt.Sprintf("Members (%d):", len(p.Members))))
		for _, m := range p.Members {
			b.WriteString("  " + userLine(m) + "\n")
		}
	}

	return b.String()
}

// RenderProjectList renders one line per project
func RenderProjectList(projects []api.Project) string {
	if len(projects) == 0 {
		return "No projects found."
	}

	var b strings.Builder
	for _, p := range projects {
		line := fmt.Sprintf("%s  %s", p.ID, titleStyle.Render(p.Name))
		var tags []string
		if p.Sphere != "" {
			tags = append(tags, p.Sphere)
		}
		if p.Type != "" {
			tags = append(tags, p.Type)
		}
		if len(tags) > 0 {
			line += "  " + labelStyle.Render("("+strings.Join(tags, ", ")+")")
		}
		line += fmt.Sprintf("  %d members", len(p.Members))
		b.WriteString(line + "\n")
	}
	return b.String()
}

// RenderUser renders a full profile view
func RenderUser(u *api.User) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(u.Username) + "\n")
	field(&b, "ID", u.ID.String())
	field(&b, "Name", u.FullName)
	field(&b, "Email", u.Email)
	if u.Age > 0 {
		field(&b, "Age", fmt.Sprintf("%d", u.Age))
	}
	field(&b, "Skills", strings.Join(u.Skills, ", "))
	field(&b, "Location", u.Location)
	field(&b, "Phone", u.Phone)
	field(&b, "Telegram", u.Telegram)
	field(&b, "Instagram", u.Instagram)
	if u.Bio != "" {
		b.WriteString("\n" + u.Bio + "\n")
	}
	return b.String()
}

// RenderUserList renders one line per user
func RenderUserList(users []api.UserSummary) string {
	if len(users) == 0 {
		return "No users found."
	}

	var b strings.Builder
	for _, u := range users {
		b.WriteString(userLine(u) + "\n")
	}
	return b.String()
}

func userLine(u api.UserSummary) string {
	line := titleStyle.Render(u.Username)
	if u.FullName != "" {
		line += " " + labelStyle.Render("("+u.FullName+")")
	}
	if len(u.Skills) > 0 {
		line += "  " + strings.Join(u.Skills, ", ")
	}
	return line
}
