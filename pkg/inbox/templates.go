package inbox

// Template is a reusable message blueprint offered in the composer.
type Template struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Subject  string `json:"subject"`
	Body     string `json:"body"`
}

// Templates returns the built-in template catalog.
func Templates() []Template {
	return templateCatalog
}

var templateCatalog = []Template{
	{
		ID:       "1",
		Name:     "Welcome Email",
		Category: "Marketing",
		Subject:  "Welcome to our platform!",
		Body: `<h2>Welcome aboard!</h2>
<p>We're excited to have you join our community.</p>
<p>Here are some things you can do to get started:</p>
<ul>
  <li>Complete your profile</li>
  <li>Explore our features</li>
  <li>Connect with other users</li>
</ul>
<p>If you have any questions, feel free to reach out to our support team.</p>
<p>Best regards,<br>The Team</p>`,
	},
	{
		ID:       "2",
		Name:     "Meeting Invitation",
		Category: "Business",
		Subject:  "Meeting Invitation",
		Body: `<h3>You're Invited to a Meeting</h3>
<p><strong>Date:</strong> [Date]</p>
<p><strong>Time:</strong> [Time]</p>
<p><strong>Location:</strong> [Location/Meeting Link]</p>
<p><strong>Agenda:</strong></p>
<ul>
  <li>[Topic 1]</li>
  <li>[Topic 2]</li>
  <li>[Topic 3]</li>
</ul>
<p>Please confirm your attendance.</p>
<p>Best regards,<br>[Your Name]</p>`,
	},
	{
		ID:       "3",
		Name:     "Newsletter",
		Category: "Marketing",
		Subject:  "Monthly Newsletter - [Month]",
		Body: `<h2>This Month's Highlights</h2>
<p>Here's what's new and exciting:</p>
<h3>Feature Updates</h3>
<p>[Describe new features or updates]</p>
<h3>Community Spotlight</h3>
<p>[Highlight community achievements or stories]</p>
<h3>Upcoming Events</h3>
<p>[List upcoming events or webinars]</p>
<p>Stay connected,<br>The Team</p>`,
	},
	{
		ID:       "4",
		Name:     "Thank You",
		Category: "Customer Service",
		Subject:  "Thank you!",
		Body: `<h3>Thank You!</h3>
<p>We wanted to take a moment to express our gratitude for your support.</p>
<p>Your feedback and engagement mean the world to us and help us improve our services.</p>
<p>We look forward to continuing to serve you.</p>
<p>Warm regards,<br>The Team</p>`,
	},
	{
		ID:       "5",
		Name:     "Follow-up",
		Category: "Business",
		Subject:  "Following up on our conversation",
		Body: `<p>Hi [Name],</p>
<p>I wanted to follow up on our recent conversation about [topic].</p>
<p>As discussed, the next steps would be:</p>
<ol>
  <li>[Step 1]</li>
  <li>[Step 2]</li>
  <li>[Step 3]</li>
</ol>
<p>Please let me know if you have any questions or if there's anything else you need from me.</p>
<p>Looking forward to hearing from you.</p>
<p>Best regards,<br>[Your Name]</p>`,
	},
}
