package debate

import (
	"fmt"

	"github.com/minsplit/minsplit/backend/internal/analysis/situation"
)

const decisionPreamble = "Balanced Decision: choose the path that preserves mental health and values while maximizing reversible upside. "

const genericLogicalOpener = "Let's structure this. We'll list objectives, constraints, and potential outcomes, then score options rationally."

func genericEmotionalOpener(tone situation.Tone) string {
	switch tone {
	case situation.LeansPositive:
		return "There's real excitement in how you describe this, and that energy matters. Let's honor what lights you up before we weigh anything."
	case situation.LeansCautious:
		return "I can feel the worry underneath this. Your well-being comes first, so let's name those fears gently before any verdict."
	default:
		return "I'm hearing both pull and hesitation here. Both are telling you something true, so let's hold space for each side."
	}
}

func genericEmotionalPoint(phrase string) string {
	return fmt.Sprintf("When you say %q, what feeling sits underneath it? Notice whether it's fear, hope, or pressure from someone else.", phrase)
}

func genericLogicalPoint(phrase string) string {
	return fmt.Sprintf("Treat %q as a claim: what evidence supports it, what would falsify it, and what does being wrong cost you?", phrase)
}

const (
	genericClosingEmotional = "Whichever way you lean, protect sleep and the small routines that keep you steady. No option is worth trading your health for."
	genericClosingLogical   = "Design a 7–14 day reversible test with one measurable signal. If the signal is good, commit further; if not, roll back cheaply."

	genericEmotionalCritique = "My bias: I overweight comfort, so I may cling to the familiar even when growth asks for a little discomfort."
	genericLogicalCritique   = "My bias: I overweight what's measurable, so I may discount feelings that resist quantification."
)

func genericScript(phrases []string, tone situation.Tone, tags []situation.Topic) script {
	points := make([]point, 0, len(phrases)+2)
	for _, phrase := range phrases {
		points = append(points, point{
			emotional: genericEmotionalPoint(phrase),
			logical:   genericLogicalPoint(phrase),
		})
	}
	points = append(points,
		point{emotional: genericClosingEmotional, logical: genericClosingLogical},
		point{emotional: genericEmotionalCritique, logical: genericLogicalCritique},
	)

	return script{
		emotionalOpener: genericEmotionalOpener(tone),
		logicalOpener:   genericLogicalOpener,
		points:          points,
		action:          genericAction(tags),
	}
}

// genericAction picks the recommended next step by sequential overwrite, so
// when several tags apply the last matching check wins: health over
// relationships over career over finance.
func genericAction(tags []situation.Topic) string {
	action := "Next step: run a 7-day experiment to gather signal and reduce uncertainty."
	if situation.HasTopic(tags, situation.TopicFinance) {
		action = "Next step: set a 30-60-90 day budget and a small-cap downside cap; run a reversible trial."
	}
	if situation.HasTopic(tags, situation.TopicCareer) {
		action = "Next step: set 3 success metrics (learning, compensation, impact) and do a 2-week shadow/test project."
	}
	if situation.HasTopic(tags, situation.TopicRelationships) {
		action = "Next step: schedule an open conversation, agree on needs and boundaries, and reassess in 2 weeks."
	}
	if situation.HasTopic(tags, situation.TopicHealth) {
		action = "Next step: adopt a minimal viable routine (sleep, meals, 20-min walk) and review mood/energy after 10 days."
	}
	return action
}

const (
	examEmotionalOpener = "Exam-night nerves are real; your mind is telling you this matters. Let's turn that care into calm, focused energy instead of dread."
	examLogicalOpener   = "One evening is enough to move the needle if we allocate it deliberately. Let's build a short, concrete plan for tonight."

	examEmotionalNaming   = "Name the feeling out loud: is it fear of the grade, or fear of what the grade means? Naming it makes it smaller."
	examLogicalHighYield  = "List the 3 highest-yield topics by marks-per-hour and start with the one you're weakest in."
	examEmotionalTomorrow = "Imagine tomorrow after the exam: what would make you proud of how you showed up tonight, whatever the score?"
	examLogicalPomodoro   = "Run 25-minute focus blocks with 5-minute breaks, phone in another room. Two solid blocks beat four distracted hours."

	examEmotionalCricket = "Cricket can be the reward, not the escape: promise yourself a guilt-free session once the work is done."
	examLogicalCricket   = "Make it an if-then plan: if the 90 minutes of practice are done by 9pm, then 30 minutes of cricket; if not, cricket waits for tomorrow."

	examEmotionalCritique = "My bias: I may be soothing you toward comfort when a little productive stress would actually serve you tonight."
	examLogicalCritique   = "My bias: a neat schedule can overstate control; one honest focus block beats a perfect plan that never starts."

	examAction = "Next step: do 90 minutes of focused practice on past questions, reward yourself with 30 minutes of cricket, and protect a full night of sleep before the exam."
)

func examEmotionalPoint(phrase string) string {
	return fmt.Sprintf("When you say %q, what does it tell you about what you value tonight: the score, the learning, or the relief?", phrase)
}

func examLogicalPoint(phrase string) string {
	return fmt.Sprintf("For %q, write down the 3 must-know items and self-test them from memory before opening your notes.", phrase)
}

func examScript(phrases []string, likesCricket bool) script {
	points := make([]point, 0, len(phrases)+4)
	points = append(points,
		point{emotional: examEmotionalNaming, logical: examLogicalHighYield},
		point{emotional: examEmotionalTomorrow, logical: examLogicalPomodoro},
	)
	if likesCricket {
		points = append(points, point{emotional: examEmotionalCricket, logical: examLogicalCricket})
	}
	for _, phrase := range phrases {
		points = append(points, point{
			emotional: examEmotionalPoint(phrase),
			logical:   examLogicalPoint(phrase),
		})
	}
	points = append(points, point{emotional: examEmotionalCritique, logical: examLogicalCritique})

	return script{
		emotionalOpener: examEmotionalOpener,
		logicalOpener:   examLogicalOpener,
		points:          points,
		action:          examAction,
	}
}
