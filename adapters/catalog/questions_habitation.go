package catalog

import "assurscore/domain/questionnaire"

func habitationQuestions() []questionnaire.Question {
	return []questionnaire.Question{
		{
			ID:       "statut_occupant",
			Section:  "Votre logement",
			Label:    "Êtes-vous locataire ou propriétaire ?",
			Kind:     questionnaire.KindChoice,
			Options:  []string{"locataire", "proprietaire"},
			Required: true,
			FollowUps: []questionnaire.FollowUp{
				{
					Condition: questionnaire.Condition{Equals: "proprietaire"},
					Question: questionnaire.Question{
						ID:      "residence_secondaire",
						Section: "Votre logement",
						Label:   "S'agit-il d'une résidence secondaire ?",
						Kind:    questionnaire.KindBool,
					},
				},
			},
		},
		{
			ID:       "surface",
			Section:  "Votre logement",
			Label:    "Quelle est la surface du logement (en m²) ?",
			Kind:     questionnaire.KindNumber,
			Required: true,
		},
		{
			ID:       "valeur_biens",
			Section:  "Vos biens",
			Label:    "À combien estimez-vous la valeur de vos biens (en euros) ?",
			Kind:     questionnaire.KindNumber,
			Required: true,
		},
		{
			ID:       "objets_valeur",
			Section:  "Vos biens",
			Label:    "Possédez-vous des objets de valeur (bijoux, matériel, œuvres) ?",
			Kind:     questionnaire.KindBool,
			Required: true,
			FollowUps: []questionnaire.FollowUp{
				{
					Condition: questionnaire.Condition{Equals: true},
					Question: questionnaire.Question{
						ID:       "capital_objets_valeur",
						Section:  "Vos biens",
						Label:    "Quel capital votre contrat garantit-il pour ces objets (en euros) ?",
						Kind:     questionnaire.KindNumber,
						Required: true,
					},
				},
			},
		},
		{
			ID:      "garanties",
			Section: "Votre contrat",
			Label:   "Quelles garanties votre contrat inclut-il ?",
			Kind:    questionnaire.KindMultiChoice,
			Options: []string{"degat_des_eaux", "vol", "bris_glace", "rc_villegiature"},
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
