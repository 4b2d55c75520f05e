package tutorsite

// DefaultArticles is the canonical blog content, reconciled against the
// store by slug. Editing this list and re-running the seed command updates
// articles in place without creating duplicates.
var DefaultArticles = []ArticleSpec{
	{
		Slug:         "women-in-tech-why-it-matters",
		CardPosition: 1,
		Title:        "More women in tech, and why it matters beyond diversity",
		Meta:         "Women in Tech • Industry • Real-world impact",
		Summary:      "This is not about quotas or optics. It is about building better products, teams, and technology.",
		Published:    true,
		Content: `The technology sector shapes how we work, communicate, and live. Yet for decades, it has been built largely by a narrow demographic, leading to products and systems that often overlook large parts of society.

Increasing the number of women in tech is not a branding exercise. It is a practical response to real problems. Diverse teams identify risks earlier, design more inclusive systems, and challenge assumptions that homogeneous teams often miss.

From my own experience working with learners and professionals, women entering tech often bring strengths that are undervalued in traditional tech culture: attention to detail, thoughtful problem-solving, and a strong sense of responsibility for how systems affect people.

This is not about replacing one group with another. It is about recognising that better technology comes from broader perspectives. When women are included at every level, from education to leadership, the quality and impact of technology improves for everyone.`,
	},
	{
		Slug:         "confidence-is-a-technical-skill",
		CardPosition: 2,
		Title:        "Confidence is a technical skill, not a personality trait",
		Meta:         "Learning • Careers • Growth mindset",
		Summary:      "Confidence grows through practice, feedback, and problem-solving, not bravado or natural talent.",
		Published:    true,
		Content: `Confidence is often misunderstood as something you either have or do not. In reality, confidence is built the same way technical skill is built: through repetition, feedback, and reflection.

In technology, progress rarely comes from instant success. It comes from trying, failing safely, understanding why something did not work, and trying again. People who appear confident are often those who have learned how to navigate uncertainty without shutting down.

This applies well beyond coding. Whether learning a new tool, changing careers, or returning to education later in life, confidence grows when progress is visible and achievable.

Creating environments where mistakes are treated as part of learning rather than evidence of failure changes outcomes dramatically. When people are supported to ask questions, test ideas, and refine their thinking, confidence follows naturally.

Confidence is not about being loud. It is about trusting your ability to figure things out.`,
	},
	{
		Slug:         "generative-ai-responsibility",
		CardPosition: 3,
		Title:        "Generative AI is powerful, but responsibility matters more",
		Meta:         "Artificial Intelligence • Ethics • Digital responsibility",
		Summary:      "AI tools can support productivity and learning, but only when used critically and responsibly.",
		Published:    true,
		Content: `Generative AI tools are now part of everyday life, from writing assistance to code generation. Their accessibility makes them powerful, but also risky when misunderstood.

These systems do not think or understand. They predict patterns based on data. This means they can produce responses that sound confident while being incorrect, biased, or inappropriate for the context.

For adults, professionals, and parents, the key skill is not learning how to prompt an AI tool, but learning how to question its output. Verification, accountability, and ethical judgement remain human responsibilities.

There are also important considerations around data privacy and security. Sharing sensitive information with AI systems can expose data in unintended ways if safeguards are not understood.

AI literacy is now a life skill. Used well, these tools can enhance productivity and creativity. Used carelessly, they can undermine trust, accuracy, and safety. The difference lies in education and awareness, not the technology itself. If you would like to read further about using AI safely and responsibly, the OECD keeps a useful overview of [AI risks and incidents](https://www.oecd.org/en/topics/sub-issues/ai-risks-and-incidents.html).`,
	},
	{
		Slug:         "exam-technique-and-stress",
		CardPosition: 4,
		Title:        "Exam technique that gets results without burning out",
		Meta:         "GCSE • A Level • Exam technique • Managing stress",
		Summary:      "Strong knowledge matters, but calm strategy and stress management are just as important.",
		Published:    true,
		Content: `Exam performance is not just a test of knowledge. It is a test of clarity, time management, and emotional regulation under pressure.

For students, understanding the exam specification and command words is essential. Knowing whether a question asks you to describe, explain, or evaluate changes how marks are awarded. Practising this deliberately improves confidence and accuracy.

Timed practice helps normalise exam conditions. Students who practise under realistic time limits are less likely to panic and more likely to structure their answers clearly.

Stress management is part of preparation, not an afterthought. Simple techniques such as breaking questions into smaller steps, answering familiar questions first, and using steady breathing can reduce overwhelm.

For parents, support often means helping students plan revision realistically, encouraging breaks, and reinforcing that one exam does not define a person's future.

Exam success comes from preparation that supports both the mind and wellbeing. When students feel supported rather than pressured, performance improves.`,
	},
}

// SeedArticles runs the idempotent content upsert for the default article
// list. Safe to re-run at any time.
func SeedArticles(store *Store) error {
	return store.UpsertArticles(DefaultArticles...)
}

// ResetArticles clears every article and reseeds from scratch. Destructive;
// intended for development resets only. The clear commits separately from
// the reseed, so a failed reseed leaves an empty table.
func ResetArticles(store *Store) error {
	if err := store.ClearArticles(); err != nil {
		return err
	}
	return SeedArticles(store)
}
