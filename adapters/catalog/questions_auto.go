package catalog

import "assurscore/domain/questionnaire"

func autoQuestions() []questionnaire.Question {
	return []questionnaire.Question{
		{
			ID:       "vehicule_usage",
			Section:  "Votre véhicule",
			Label:    "Quel usage faites-vous de votre véhicule ?",
			Kind:     questionnaire.KindChoice,
			Options:  []string{"quotidien", "occasionnel", "professionnel"},
			Required: true,
		},
		{
			ID:       "age_conducteur",
			Section:  "Votre profil",
			Label:    "Quel est l'âge du conducteur principal ?",
			Kind:     questionnaire.KindNumber,
			Required: true,
		},
		{
			ID:       "anciennete_permis",
			Section:  "Votre profil",
			Label:    "Depuis combien de temps avez-vous le permis ?",
			Kind:     questionnaire.KindChoice,
			Options:  []string{"moins_2_ans", "2_5_ans", "plus_5_ans"},
			Required: true,
			FollowUps: []questionnaire.FollowUp{
				{
					Condition: questionnaire.Condition{Equals: "moins_2_ans"},
					Question: questionnaire.Question{
						ID:      "conduite_accompagnee",
						Section: "Votre profil",
						Label:   "Avez-vous fait la conduite accompagnée ?",
						Kind:    questionnaire.KindBool,
					},
				},
			},
		},
		{
			ID:       "type_couverture",
			Section:  "Votre contrat",
			Label:    "Quelle est votre formule actuelle ?",
			Kind:     questionnaire.KindChoice,
			Options:  []string{"tiers", "tiers_plus", "tous_risques"},
			Required: true,
			FollowUps: []questionnaire.FollowUp{
				{
					Condition: questionnaire.Condition{Equals: "tous_risques"},
					Question: questionnaire.Question{
						ID:       "valeur_vehicule",
						Section:  "Votre contrat",
						Label:    "Quelle est la valeur estimée de votre véhicule (en euros) ?",
						Kind:     questionnaire.KindNumber,
						Required: true,
					},
				},
			},
		},
		{
			ID:       "franchise",
			Section:  "Votre contrat",
			Label:    "Quel est le montant de votre franchise (en euros) ?",
			Kind:     questionnaire.KindNumber,
			Required: true,
		},
		{
			ID:       "sinistres_3_ans",
			Section:  "Votre historique",
			Label:    "Combien de sinistres avez-vous déclarés ces 3 dernières années ?",
			Kind:     questionnaire.KindChoice,
			Options:  []string{"0", "1", "2_plus"},
			Required: true,
			FollowUps: []questionnaire.FollowUp{
				{
					Condition: questionnaire.Condition{Equals: "2_plus"},
					Question: questionnaire.Question{
						ID:      "malus",
						Section: "Votre historique",
						Label:   "Quel est votre coefficient bonus-malus actuel ?",
						Kind:    questionnaire.KindNumber,
					},
				},
			},
		},
		{
			ID:      "garanties_incluses",
			Section: "Votre contrat",
			Label:   "Quelles garanties annexes sont incluses ?",
			Kind:    questionnaire.KindMultiChoice,
			Options: []string{"assistance_0km", "vehicule_remplacement", "bris_glace", "protection_juridique"},
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
