package strategies

import (
	"assurscore/domain/analysis"
	"assurscore/domain/insurance"
)

func gavStrategies() []analysis.Strategy {
	return []analysis.Strategy{
		invalidityThreshold{base{id: "gav.invalidity_threshold", category: analysis.CategoryGarantie, free: true}},
		riskSports{base{id: "gav.risk_sports", category: analysis.CategoryRisque}},
		familyCapital{base{id: "gav.family_capital", category: analysis.CategoryCouverture}},
		gavPremium{base{id: "gav.premium_benchmark", category: analysis.CategoryTarif}},
	}
}

// invalidityThreshold checks the invalidity rate from which the contract
// starts paying out. A 30% threshold excludes the vast majority of accidents.
type invalidityThreshold struct{ base }

func (invalidityThreshold) Applies(a insurance.Answers) bool {
	return a.Has("taux_invalidite_seuil")
}

func (s invalidityThreshold) Evaluate(a insurance.Answers) analysis.Verdict {
	switch a.String("taux_invalidite_seuil") {
	case "30":
		return analysis.Verdict{
			Status:   analysis.StatusDanger,
			Priority: analysis.PriorityP1,
			Content: analysis.Content{
				Title: "Seuil d'intervention à 30%",
				Short: "Votre GAV n'indemnise qu'à partir de 30% d'invalidité.",
				Full: "Un seuil de déclenchement à 30% d'invalidité permanente exclut " +
					"l'immense majorité des accidents de la vie courante : la perte " +
					"d'un œil est cotée autour de 25%, un pouce autour de 20%. " +
					"Privilégiez un contrat intervenant **dès 1% ou 5%**.",
			},
		}
	case "10":
		return analysis.Verdict{
			Status:   analysis.StatusAttention,
			Priority: analysis.PriorityP2,
			Content: analysis.Content{
				Title: "Seuil d'intervention à 10%",
				Short: "Un seuil à 10% laisse de nombreux accidents non indemnisés.",
				Full: "Un seuil à 10% couvre les accidents graves mais laisse de côté " +
					"beaucoup de séquelles courantes. Les bons contrats du marché " +
					"interviennent dès 1% ou 5% pour quelques euros de plus.",
			},
		}
	default:
		return analysis.Verdict{
			Status:   analysis.StatusOK,
			Priority: analysis.PriorityP3,
			Content: analysis.Content{
				Title: "Seuil d'intervention protecteur",
				Short: "Votre contrat intervient dès un faible taux d'invalidité.",
				Full:  "Votre seuil de déclenchement couvre aussi les séquelles légères. C'est le bon réglage.",
			},
		}
	}
}

// riskSports warns about the standard risk-sports exclusion.
type riskSports struct{ base }

func (riskSports) Applies(a insurance.Answers) bool {
	return a.Bool("pratique_sport_risque")
}

func (s riskSports) Evaluate(a insurance.Answers) analysis.Verdict {
	return analysis.Verdict{
		Status:   analysis.StatusAttention,
		Priority: analysis.PriorityP2,
		Content: analysis.Content{
			Title: "Sports à risque probablement exclus",
			Short: "Les GAV standard excluent la plupart des sports à risque.",
			Full: "Vous déclarez pratiquer un sport à risque. Les contrats GAV " +
				"standard excluent alpinisme, plongée, sports aériens et sports de " +
				"combat. Vérifiez la liste d'exclusions et souscrivez si besoin une " +
				"extension ou une assurance fédérale dédiée.",
		},
	}
}

// familyCapital checks the death capital against family composition.
type familyCapital struct{ base }

func (familyCapital) Applies(a insurance.Answers) bool {
	return a.String("situation_famille") == "famille" && a.Has("capital_deces")
}

func (s familyCapital) Evaluate(a insurance.Answers) analysis.Verdict {
	capital, _ := a.Float("capital_deces")
	if capital < 100000 {
		return analysis.Verdict{
			Status:   analysis.StatusAttention,
			Priority: analysis.PriorityP2,
			Content: analysis.Content{
				Title: "Capital décès insuffisant pour une famille",
				Short: "Le capital décès paraît bas pour un foyer avec enfants.",
				Full: "Avec des enfants à charge, un capital décès sous 100 000 € " +
					"couvre mal la perte de revenus du foyer. La recommandation " +
					"usuelle est de 3 à 5 ans de revenus par parent.",
			},
		}
	}
	return analysis.Verdict{
		Status:   analysis.StatusOK,
		Priority: analysis.PriorityP3,
		Content: analysis.Content{
			Title: "Capital décès adapté",
			Short: "Le capital décès est cohérent avec votre situation familiale.",
			Full:  "Votre capital décès couvre correctement un foyer avec enfants.",
		},
	}
}

// gavPremium flags overpriced single-person GAV contracts.
type gavPremium struct{ base }

func (gavPremium) Applies(a insurance.Answers) bool {
	_, ok := a.Float("prime_mensuelle")
	return ok && a.Has("situation_famille")
}

func (s gavPremium) Evaluate(a insurance.Answers) analysis.Verdict {
	premium, _ := a.Float("prime_mensuelle")
	reference := 12.0
	if a.String("situation_famille") != "seul" {
		reference = 22.0
	}
	if premium > reference*1.4 {
		yearly := (premium - reference) * 12
		return analysis.Verdict{
			Status:   analysis.StatusAttention,
			Priority: analysis.PriorityP2,
			Content: analysis.Content{
				Title: "GAV au-dessus du marché",
				Short: "Votre prime GAV dépasse nettement les offres comparables.",
				Full: "Une GAV individuelle se négocie autour de 10-15 € par mois, " +
					"une formule famille autour de 20-25 €. Au-delà, comparez à " +
					"seuil d'intervention et plafonds équivalents.",
			},
			Savings: savings(yearly*0.5, yearly),
		}
	}
	return analysis.Verdict{
		Status:   analysis.StatusOK,
		Priority: analysis.PriorityP3,
		Content: analysis.Content{
			Title: "Prime GAV raisonnable",
			Short: "Votre prime GAV est dans la fourchette du marché.",
			Full:  "Votre prime est cohérente avec les offres comparables du marché.",
		},
	}
}
