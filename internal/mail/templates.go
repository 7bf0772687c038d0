package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"net/url"
	"strings"
)

const (
	invitationSubject = "Merci de votre visite — Donnez votre avis"
	noComment         = "-"
)

var invitationTemplate = template.Must(template.New("invitation").Parse(`<p>Bonjour,</p>
<p>Merci de votre visite {{if .PracticeName}}au {{.PracticeName}}{{else}}au cabinet{{end}}.</p>
<p>Votre avis nous est précieux pour améliorer nos services.</p>
<p><a href="{{.Link}}" style="background-color: #4CAF50; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block; margin-top: 10px;">Cliquez ici pour laisser un avis</a></p>
<p style="margin-top: 20px; font-size: 12px; color: #666;">Ce lien est valide pendant 30 jours.</p>
<p style="margin-top: 10px; font-size: 12px; color: #666;">Si vous ne souhaitez pas recevoir ces emails, vous pouvez nous le signaler.</p>
`))

type invitationData struct {
	PracticeName string
	Link         string
}

// FeedbackLink is the front-end page a patient opens to rate the appointment.
func FeedbackLink(frontendURL, token string) string {
	return strings.TrimRight(frontendURL, "/") + "/feedback?token=" + url.QueryEscape(token)
}

func renderInvitation(practiceName, link string) (string, error) {
	var buf bytes.Buffer
	if err := invitationTemplate.Execute(&buf, invitationData{PracticeName: practiceName, Link: link}); err != nil {
		return "", fmt.Errorf("failed to render invitation: %w", err)
	}
	return buf.String(), nil
}

func invitationText(link string) string {
	return "Bonjour,\n\nMerci de votre visite. Votre avis nous est précieux :\n" + link + "\n\nCe lien est valide pendant 30 jours.\n"
}

func alertSubject(rating int) string {
	return fmt.Sprintf("Avis négatif reçu (%d★)", rating)
}

func alertText(rating int, comment string) string {
	if strings.TrimSpace(comment) == "" {
		comment = noComment
	}
	return fmt.Sprintf("Un patient a laissé une note de %d.\n\nCommentaire:\n%s", rating, comment)
}
