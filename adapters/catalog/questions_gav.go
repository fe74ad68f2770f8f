package catalog

import "assurscore/domain/questionnaire"

func gavQuestions() []questionnaire.Question {
	return []questionnaire.Question{
		{
			ID:       "situation_famille",
			Section:  "Votre foyer",
			Label:    "Quelle est votre situation familiale ?",
			Kind:     questionnaire.KindChoice,
			Options:  []string{"seul", "couple", "famille"},
			Required: true,
			FollowUps: []questionnaire.FollowUp{
				{
					Condition: questionnaire.Condition{Equals: "famille"},
					Question: questionnaire.Question{
						ID:       "nb_enfants",
						Section:  "Votre foyer",
						Label:    "Combien d'enfants sont couverts par le contrat ?",
						Kind:     questionnaire.KindNumber,
						Required: true,
					},
				},
			},
		},
		{
			ID:       "pratique_sport_risque",
			Section:  "Vos activités",
			Label:    "Pratiquez-vous un sport à risque ?",
			Kind:     questionnaire.KindBool,
			Required: true,
			FollowUps: []questionnaire.FollowUp{
				{
					Condition: questionnaire.Condition{Equals: true},
					Question: questionnaire.Question{
						ID:      "sports_pratiques",
						Section: "Vos activités",
						Label:   "Lesquels ?",
						Kind:    questionnaire.KindMultiChoice,
						Options: []string{"alpinisme", "plongee", "sports_aeriens", "sports_combat", "autre"},
					},
				},
			},
		},
		{
			ID:       "capital_deces",
			Section:  "Vos garanties",
			Label:    "Quel capital décès votre contrat prévoit-il (en euros) ?",
			Kind:     questionnaire.KindNumber,
			Required: true,
		},
		{
			ID:       "taux_invalidite_seuil",
			Section:  "Vos garanties",
			Label:    "À partir de quel taux d'invalidité le contrat intervient-il (en %) ?",
			Kind:     questionnaire.KindChoice,
			Options:  []string{"1", "5", "10", "30"},
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
