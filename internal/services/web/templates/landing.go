package templates

import (
	"context"

	"github.com/a-h/templ"
	"github.com/hustredowls/redowls.club/internal/services/contact"
	"github.com/hustredowls/redowls.club/internal/services/roster"
	"github.com/hustredowls/redowls.club/internal/services/web/routepath"
)

// ActivityKeys lists the activity cards in display order.
var ActivityKeys = []string{"training", "scrimmage", "league", "friendly", "recruiting", "experience"}

// ContactFormView is the contact form's values and field errors.
type ContactFormView struct {
	FullName string
	Email    string
	Message  string
	// Invalid holds the names of fields that failed validation.
	Invalid map[string]bool
	Sent    bool
}

// LandingView is the home page state.
type LandingView struct {
	// Teaser holds a few recent photos for the media section; empty hides
	// the strip but keeps the call to action.
	Teaser []GridItem
	// GallerySession keeps the call to action on the teaser's snapshot.
	GallerySession string
	Leaders        roster.Roster
	Contact        ContactFormView
}

// Landing renders the home page sections.
func Landing(view LandingView, loc Localizer) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		m.raw(`<section class="hero">`)
		m.element("h1", T(loc, "site.title"))
		m.element("p", T(loc, "site.tagline"), "class", "tagline")
		m.raw("</section>")

		m.raw(`<section id="about" class="about">`)
		m.element("p", T(loc, "about.eyebrow"), "class", "eyebrow")
		m.element("h2", T(loc, "about.title"))
		m.element("p", T(loc, "about.subtitle"), "class", "subtitle")
		m.element("p", T(loc, "about.body"))
		m.raw("</section>")

		m.raw(`<section id="activities" class="activities">`)
		m.element("p", T(loc, "activities.eyebrow"), "class", "eyebrow")
		m.element("h2", T(loc, "activities.title"))
		m.element("p", T(loc, "activities.subtitle"), "class", "subtitle")
		m.raw(`<ul class="activity-list">`)
		for _, key := range ActivityKeys {
			m.open("li", "class", "activity", "data-activity", key)
			m.element("h3", T(loc, "activities."+key+".title"))
			m.element("p", T(loc, "activities."+key+".body"))
			m.raw("</li>")
		}
		m.raw("</ul></section>")

		if !view.Leaders.Empty() {
			m.component(ctx, Leaders(view.Leaders, loc))
		}

		m.raw(`<section id="media" class="media">`)
		m.element("p", T(loc, "media.eyebrow"), "class", "eyebrow")
		m.element("h2", T(loc, "media.title"))
		if len(view.Teaser) > 0 {
			m.raw(`<div class="media-teaser">`)
			for _, item := range view.Teaser {
				m.component(ctx, gridItem(item, loc))
			}
			m.raw("</div>")
		}
		m.element("a", T(loc, "media.cta"), "href", routepath.GalleryGrid(view.GallerySession), "class", "button")
		m.raw("</section>")

		m.component(ctx, ContactForm(view.Contact, loc))
	})
}

// Leaders renders the leadership cards, leaders first.
func Leaders(r roster.Roster, loc Localizer) templ.Component {
	return component(func(_ context.Context, m *markup) {
		m.raw(`<section id="leaders" class="leaders">`)
		m.element("p", T(loc, "leaders.eyebrow"), "class", "eyebrow")
		m.element("h2", T(loc, "leaders.title"))
		m.element("p", T(loc, "leaders.subtitle"), "class", "subtitle")
		for _, tier := range []struct {
			class   string
			members []roster.Member
		}{
			{"leader-list", r.Leaders},
			{"leader-list sub-leaders", r.SubLeaders},
		} {
			if len(tier.members) == 0 {
				continue
			}
			m.open("ul", "class", tier.class)
			for _, member := range tier.members {
				leaderCard(m, member, loc)
			}
			m.raw("</ul>")
		}
		m.raw("</section>")
	})
}

func leaderCard(m *markup, member roster.Member, loc Localizer) {
	if member.Color != "" {
		m.open("li", "class", "leader", "style", "--leader-color: "+member.Color)
	} else {
		m.open("li", "class", "leader")
	}
	if member.Image != "" {
		m.raw("<img")
		m.attrs("src", member.Image, "alt", member.Name)
		m.raw(` loading="lazy">`)
	}
	m.element("h3", member.Name)
	if member.Number != "" {
		m.element("p", T(loc, "leaders.number", member.Number), "class", "leader-number")
	}
	if member.Generation != "" {
		m.element("p", T(loc, "leaders.generation", member.Generation), "class", "leader-generation")
	}
	if member.Position != "" {
		m.element("p", member.Position, "class", "leader-position")
	}
	m.raw("</li>")
}

type contactField struct {
	name      string
	labelKey  string
	inputType string
	maxLength int
}

var contactFields = []contactField{
	{name: contact.FieldFullName, labelKey: "contact.form.full_name", inputType: "text", maxLength: contact.MaxFullNameLen},
	{name: contact.FieldEmail, labelKey: "contact.form.email", inputType: "email", maxLength: contact.MaxEmailLen},
	{name: contact.FieldMessage, labelKey: "contact.form.message", maxLength: contact.MaxBodyLen},
}

// ContactForm renders the contact section with its form.
func ContactForm(view ContactFormView, loc Localizer) templ.Component {
	return component(func(_ context.Context, m *markup) {
		m.raw(`<section id="`, routepath.ContactAnchor, `" class="contact">`)
		m.element("p", T(loc, "contact.eyebrow"), "class", "eyebrow")
		m.element("h2", T(loc, "contact.title"))
		m.element("p", T(loc, "contact.subtitle"), "class", "subtitle")
		m.element("p", T(loc, "contact.description"))
		if view.Sent {
			m.element("p", T(loc, "contact.sent"), "class", "form-status", "role", "status")
		}
		m.open("form", "method", "post", "action", routepath.Contact, "class", "contact-form")
		m.element("h3", T(loc, "contact.form.title"))
		values := map[string]string{
			contact.FieldFullName: view.FullName,
			contact.FieldEmail:    view.Email,
			contact.FieldMessage:  view.Message,
		}
		for _, field := range contactFields {
			id := "contact-" + field.name
			invalid := view.Invalid[field.name]
			m.element("label", T(loc, field.labelKey), "for", id)
			attrs := []string{"id", id, "name", field.name}
			if invalid {
				attrs = append(attrs, "aria-invalid", "true", "aria-describedby", id+"-error")
			}
			if field.inputType == "" {
				m.raw("<textarea")
				m.attrs(attrs...)
				m.intAttr("maxlength", field.maxLength)
				m.raw(` rows="6" required>`)
				m.text(values[field.name])
				m.raw("</textarea>")
			} else {
				m.raw("<input")
				m.attrs(attrs...)
				m.attr("type", field.inputType)
				m.attr("value", values[field.name])
				m.intAttr("maxlength", field.maxLength)
				m.raw(" required>")
			}
			if invalid {
				m.element("p", T(loc, "contact.error."+field.name), "id", id+"-error", "class", "field-error")
			}
		}
		m.element("button", T(loc, "contact.form.submit"), "type", "submit")
		m.raw("</form></section>")
	})
}
