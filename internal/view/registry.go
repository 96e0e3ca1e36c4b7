package view

import (
	"context"
	"fmt"
	"time"

	"github.com/Arungadam/Alcohol-Recovery-MENTIS006-CognitiveKinetics/internal/models"
	"github.com/Arungadam/Alcohol-Recovery-MENTIS006-CognitiveKinetics/internal/services"
	"github.com/Arungadam/Alcohol-Recovery-MENTIS006-CognitiveKinetics/internal/store"
)

type dispatchKey struct {
	Role models.Role
	View ViewID
}

// HandlerFunc builds the content for one (role, view) pair.
type HandlerFunc func(ctx context.Context, acct models.Account) Content

// Registry is the view dispatch table. Construct one per process with the
// store and services it reads from; nothing is ambient.
type Registry struct {
	store    *store.Store
	journal  services.JournalService
	now      func() time.Time
	handlers map[dispatchKey]HandlerFunc
}

func NewRegistry(st *store.Store, journal services.JournalService) *Registry {
	r := &Registry{store: st, journal: journal, now: time.Now}

	r.handlers = map[dispatchKey]HandlerFunc{
		{models.RoleParticipant, ViewHome}:     r.participantHome,
		{models.RoleParticipant, ViewJournal}:  r.participantJournal,
		{models.RoleParticipant, ViewMeetings}: r.participantMeetings,
		{models.RoleParticipant, ViewPrivacy}:  r.participantPrivacy,

		{models.RoleSponsor, ViewHome}:     r.sponsorSponsees,
		{models.RoleSponsor, ViewSponsees}: r.sponsorSponsees,
		{models.RoleSponsor, ViewMessages}: r.sponsorMessages,

		{models.RoleFacilitator, ViewHome}:     r.facilitatorSchedule,
		{models.RoleFacilitator, ViewSchedule}: r.facilitatorSchedule,
		// group-notes is navigable but has no handler; it renders nothing.

		{models.RoleAdmin, ViewHome}:   r.adminSystem,
		{models.RoleAdmin, ViewSystem}: r.adminSystem,
	}

	return r
}

// Render produces the content for the given account's role and the requested
// view. A pair without a handler returns the explicit no-content variant:
// nothing is rendered and no error is raised.
func (r *Registry) Render(ctx context.Context, acct models.Account, v ViewID) Content {
	h, ok := r.handlers[dispatchKey{Role: acct.Role, View: v}]
	if !ok {
		return None()
	}
	return h(ctx, acct)
}

// Nav returns the views reachable from a role's dashboard, home first.
func Nav(role models.Role) []ViewID {
	switch role {
	case models.RoleParticipant:
		return []ViewID{ViewHome, ViewJournal, ViewMeetings, ViewPrivacy}
	case models.RoleSponsor:
		return []ViewID{ViewHome, ViewSponsees, ViewMessages}
	case models.RoleFacilitator:
		return []ViewID{ViewHome, ViewSchedule, ViewGroupNotes}
	case models.RoleAdmin:
		return []ViewID{ViewHome, ViewSystem}
	}
	return nil
}

func (r *Registry) participantHome(ctx context.Context, acct models.Account) Content {
	days := SobrietyDays(r.now(), acct.SobrietyDate)

	meetings := r.store.Meetings()
	if len(meetings) > 2 {
		meetings = meetings[:2]
	}
	meetingLines := make([]string, 0, len(meetings))
	for _, m := range meetings {
		meetingLines = append(meetingLines, fmt.Sprintf("%s @ %s", m.Title, m.Time))
	}

	return Content{
		Title: "Overview",
		Sections: []Section{
			{Heading: "Sobriety Time", Lines: []string{fmt.Sprintf("%d Days", days)}},
			{Heading: "Quick Actions", Lines: []string{
				"support — request support",
				"journal — write a reflection",
			}},
			{Heading: "Upcoming Meetings", Lines: meetingLines},
		},
	}
}

func (r *Registry) participantJournal(ctx context.Context, acct models.Account) Content {
	entries := r.journal.EntriesFor(ctx, acct.ID)

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("[%s] %s", e.Date, e.Text))
	}
	if len(lines) == 0 {
		lines = append(lines, "No entries yet.")
	}

	return Content{
		Title: "Journal",
		Sections: []Section{
			{Heading: "About", Lines: []string{
				"Entries are stored with a reversible encoding, not encryption.",
				"Only this profile's entries are listed.",
			}},
			{Heading: "Entries", Lines: lines},
		},
	}
}

func (r *Registry) participantMeetings(ctx context.Context, acct models.Account) Content {
	meetings := r.store.Meetings()
	lines := make([]string, 0, len(meetings))
	for _, m := range meetings {
		lines = append(lines, fmt.Sprintf("%s — %s, %s", m.Title, m.Time, m.Type))
	}

	return Content{
		Title:    "Meeting Schedule",
		Sections: []Section{{Heading: "All Meetings", Lines: lines}},
	}
}

func (r *Registry) participantPrivacy(ctx context.Context, acct models.Account) Content {
	return Content{
		Title: "Privacy Center",
		Sections: []Section{
			{Heading: "Visibility", Lines: []string{
				"Visible to sponsor: on",
				"Show milestones publicly: off",
				"Data retention (auto-delete journals after 1yr): on",
			}},
			{Heading: "Danger Zone", Lines: []string{
				"wipe — permanently delete all data",
				"export — dump all collections as JSON",
			}},
		},
	}
}

func (r *Registry) sponsorSponsees(ctx context.Context, acct models.Account) Content {
	return Content{
		Title: "Your Sponsees",
		Sections: []Section{
			{Heading: "Alex_Member", Lines: []string{
				"Checking in",
				"Last contact: 2 days ago",
			}},
			{Heading: "Sam_Recover", Lines: []string{
				"Support needed",
				"Flagged: high risk",
			}},
		},
	}
}

func (r *Registry) sponsorMessages(ctx context.Context, acct models.Account) Content {
	return Content{
		Title: "Messages",
		Sections: []Section{
			{Heading: "Thread", Lines: []string{
				"Alex_Member: Hey, I'm struggling with step 4.",
			}},
		},
	}
}

func (r *Registry) facilitatorSchedule(ctx context.Context, acct models.Account) Content {
	return Content{
		Title: "Facilitator Dashboard",
		Sections: []Section{
			{Heading: "Meeting Attendance (Aggregated)", Lines: []string{
				"Trend: stable participation.",
				"No individual identities logged.",
			}},
		},
	}
}

func (r *Registry) adminSystem(ctx context.Context, acct models.Account) Content {
	return Content{
		Title: "System Health",
		Sections: []Section{
			{Heading: "Total Accounts", Lines: []string{
				fmt.Sprintf("%d", r.store.AccountCount()),
			}},
			{Heading: "Journal Encoding", Lines: []string{
				"Reversible encoding only; no confidentiality.",
			}},
			{Heading: "Access Restriction", Lines: []string{
				"Personal journals and support requests are not visible here.",
			}},
		},
	}
}

// SupportConfirmation is the panel shown immediately after a support
// request is recorded.
func SupportConfirmation(notifySponsor bool) Content {
	c := Content{
		Title: "Support Activated",
		Sections: []Section{
			{Heading: "", Lines: []string{"You are not alone. Help is on the way."}},
		},
	}
	if notifySponsor {
		c.Sections = append(c.Sections, Section{
			Lines: []string{"Your sponsor has been notified."},
		})
	}
	c.Sections = append(c.Sections, Section{
		Heading: "Immediate Steps",
		Lines: []string{
			"Find a safe, quiet space.",
			"Call your sponsor.",
			"Attend a meeting virtually or in person.",
		},
	})
	return c
}
