package catalog

import "assurscore/domain/questionnaire"

func mutuelleQuestions() []questionnaire.Question {
	return []questionnaire.Question{
		{
			ID:       "age_assure",
			Section:  "Votre profil",
			Label:    "Quel est votre âge ?",
			Kind:     questionnaire.KindNumber,
			Required: true,
		},
		{
			ID:       "besoins",
			Section:  "Vos besoins",
			Label:    "Quels postes de santé comptent le plus pour vous ?",
			Kind:     questionnaire.KindMultiChoice,
			Options:  []string{"optique", "dentaire", "hospitalisation", "medecine_douce"},
			Required: true,
			FollowUps: []questionnaire.FollowUp{
				{
					Condition: questionnaire.Condition{Contains: "optique"},
					Question: questionnaire.Question{
						ID:      "porteur_lunettes",
						Section: "Vos besoins",
						Label:   "Portez-vous des lunettes ou lentilles ?",
						Kind:    questionnaire.KindBool,
					},
				},
			},
		},
		{
			ID:       "niveau_hospitalisation",
			Section:  "Vos garanties",
			Label:    "Quel est votre niveau de remboursement hospitalisation (% du tarif de convention) ?",
			Kind:     questionnaire.KindChoice,
			Options:  []string{"100", "150", "200", "300"},
			Required: true,
		},
		{
			ID:       "depassements_honoraires",
			Section:  "Vos garanties",
			Label:    "Consultez-vous des praticiens avec dépassements d'honoraires ?",
			Kind:     questionnaire.KindBool,
			Required: true,
		},
		{
			ID:       "prime_mensuelle",
			Section:  "Votre tarif",
			Label:    "Combien payez-vous par mois (en euros) ?",
			Kind:     questionnaire.KindNumber,
			Required: true,
		},
	}
}
