package strategies

import (
	"assurscore/domain/analysis"
	"assurscore/domain/insurance"
)

func autoStrategies() []analysis.Strategy {
	return []analysis.Strategy{
		driverAge{base{id: "auto.driver_age", category: analysis.CategoryProfil, free: true}},
		premiumBenchmark{base{id: "auto.premium_benchmark", category: analysis.CategoryTarif, free: true}},
		coverageLevel{base{id: "auto.coverage_level", category: analysis.CategoryCouverture}},
		deductible{base{id: "auto.deductible", category: analysis.CategoryTarif}},
		claimsHistory{base{id: "auto.claims_history", category: analysis.CategoryRisque}},
		guaranteeGaps{base{id: "auto.guarantee_gaps", category: analysis.CategoryGarantie}},
	}
}

// driverAge flags contracts held by drivers below the legal driving age and
// surcharged young-driver profiles.
type driverAge struct{ base }

func (driverAge) Applies(a insurance.Answers) bool {
	return a.Has("age_conducteur")
}

func (s driverAge) Evaluate(a insurance.Answers) analysis.Verdict {
	age, _ := a.Float("age_conducteur")
	switch {
	case age < 18:
		return analysis.Verdict{
			Status:   analysis.StatusDanger,
			Priority: analysis.PriorityP1,
			Content: analysis.Content{
				Title: "Conducteur sous l'âge légal",
				Short: "Le conducteur déclaré a moins de 18 ans.",
				Full: "Un contrat auto souscrit pour un conducteur de moins de 18 ans " +
					"est **inassurable en conduite autonome**. En cas de sinistre, " +
					"l'assureur peut opposer une nullité du contrat et refuser toute " +
					"indemnisation. Vérifiez la déclaration du conducteur principal.",
			},
			Savings: savings(0, 0),
		}
	case age < 25:
		return analysis.Verdict{
			Status:   analysis.StatusAttention,
			Priority: analysis.PriorityP2,
			Content: analysis.Content{
				Title: "Surprime jeune conducteur",
				Short: "Les moins de 25 ans paient une surprime importante.",
				Full: "Les assureurs appliquent une surprime aux conducteurs de moins " +
					"de 25 ans. Certains contrats la réduisent après 2 ans sans sinistre, " +
					"ou en cas de conduite accompagnée. Comparez les offres dédiées " +
					"jeunes conducteurs.",
			},
			Savings: savings(120, 360),
		}
	default:
		return analysis.Verdict{
			Status:   analysis.StatusOK,
			Priority: analysis.PriorityP3,
			Content: analysis.Content{
				Title: "Profil conducteur standard",
				Short: "Votre âge n'entraîne pas de surprime.",
				Full:  "Aucune surprime liée à l'âge ne s'applique à votre profil.",
			},
		}
	}
}

// premiumBenchmark compares the monthly premium against a market reference
// for the declared coverage level.
type premiumBenchmark struct{ base }

var autoPremiumReference = map[string]float64{
	"tiers":        35,
	"tiers_plus":   48,
	"tous_risques": 68,
}

func (premiumBenchmark) Applies(a insurance.Answers) bool {
	_, ok := a.Float("prime_mensuelle")
	return ok && a.Has("type_couverture")
}

func (s premiumBenchmark) Evaluate(a insurance.Answers) analysis.Verdict {
	premium, _ := a.Float("prime_mensuelle")
	reference, ok := autoPremiumReference[a.String("type_couverture")]
	if !ok {
		reference = autoPremiumReference["tiers_plus"]
	}
	ratio := premium / reference
	switch {
	case ratio >= 1.5:
		yearly := (premium - reference) * 12
		return analysis.Verdict{
			Status:   analysis.StatusDanger,
			Priority: analysis.PriorityP1,
			Content: analysis.Content{
				Title: "Prime très au-dessus du marché",
				Short: "Vous payez environ 50% de plus que la référence du marché.",
				Full: "Votre prime mensuelle dépasse nettement la référence du marché " +
					"pour votre niveau de couverture. Une mise en concurrence devrait " +
					"réduire la facture sans perte de garanties. La **loi Hamon** vous " +
					"permet de résilier à tout moment après un an de contrat.",
			},
			Savings: savings(yearly*0.6, yearly),
		}
	case ratio >= 1.2:
		yearly := (premium - reference) * 12
		return analysis.Verdict{
			Status:   analysis.StatusAttention,
			Priority: analysis.PriorityP2,
			Content: analysis.Content{
				Title: "Prime au-dessus du marché",
				Short: "Votre prime dépasse la référence pour ce niveau de couverture.",
				Full: "Votre prime est supérieure d'au moins 20% à la référence du " +
					"marché. Demandez des devis équivalents garantie par garantie " +
					"avant de renouveler.",
			},
			Savings: savings(yearly*0.5, yearly*0.9),
		}
	default:
		return analysis.Verdict{
			Status:   analysis.StatusOK,
			Priority: analysis.PriorityP3,
			Content: analysis.Content{
				Title: "Prime dans le marché",
				Short: "Votre prime est cohérente avec votre couverture.",
				Full:  "Votre prime mensuelle est dans la fourchette observée pour ce niveau de couverture.",
			},
		}
	}
}

// coverageLevel checks the coverage level against the declared vehicle value.
type coverageLevel struct{ base }

func (coverageLevel) Applies(a insurance.Answers) bool {
	return a.Has("type_couverture")
}

func (s coverageLevel) Evaluate(a insurance.Answers) analysis.Verdict {
	coverage := a.String("type_couverture")
	value, hasValue := a.Float("valeur_vehicule")

	if coverage == "tous_risques" && hasValue && value < 4000 {
		return analysis.Verdict{
			Status:   analysis.StatusAttention,
			Priority: analysis.PriorityP2,
			Content: analysis.Content{
				Title: "Tous risques sur un véhicule de faible valeur",
				Short: "Le tous risques est rarement rentable sous 4 000 €.",
				Full: "Pour un véhicule estimé sous 4 000 €, la différence de prime " +
					"entre tous risques et tiers étendu dépasse souvent l'indemnisation " +
					"espérée. Passer au **tiers étendu** conserve vol, incendie et bris " +
					"de glace.",
			},
			Savings: savings(150, 320),
		}
	}
	if coverage == "tiers" {
		return analysis.Verdict{
			Status:   analysis.StatusAttention,
			Priority: analysis.PriorityP3,
			Content: analysis.Content{
				Title: "Couverture minimale",
				Short: "Au tiers, vos propres dommages ne sont jamais couverts.",
				Full: "La formule au tiers ne couvre que la responsabilité civile. " +
					"Vol, incendie et dommages tous accidents restent à votre charge. " +
					"Vérifiez que ce choix est délibéré au regard de la valeur du véhicule.",
			},
		}
	}
	return analysis.Verdict{
		Status:   analysis.StatusOK,
		Priority: analysis.PriorityP3,
		Content: analysis.Content{
			Title: "Niveau de couverture cohérent",
			Short: "Votre formule correspond à l'usage déclaré.",
			Full:  "Votre niveau de couverture est adapté aux éléments déclarés.",
		},
	}
}

// deductible flags deductibles outside the usual range.
type deductible struct{ base }

func (deductible) Applies(a insurance.Answers) bool {
	_, ok := a.Float("franchise")
	return ok
}

func (s deductible) Evaluate(a insurance.Answers) analysis.Verdict {
	franchise, _ := a.Float("franchise")
	switch {
	case franchise > 500:
		return analysis.Verdict{
			Status:   analysis.StatusAttention,
			Priority: analysis.PriorityP2,
			Content: analysis.Content{
				Title: "Franchise élevée",
				Short: "Au-delà de 500 €, un sinistre moyen reste à votre charge.",
				Full: "Votre franchise dépasse 500 €. Sur un sinistre courant " +
					"(carrosserie, bris de glace), l'indemnisation réelle devient " +
					"marginale. Négociez une franchise autour de 250-350 €.",
			},
		}
	case franchise < 150:
		return analysis.Verdict{
			Status:   analysis.StatusAttention,
			Priority: analysis.PriorityP3,
			Content: analysis.Content{
				Title: "Franchise très basse, prime gonflée",
				Short: "Une franchise basse se paie chaque mois dans la prime.",
				Full: "Une franchise sous 150 € majore sensiblement la prime. Si vous " +
					"déclarez peu de sinistres, relever la franchise à 300 € réduit la " +
					"prime annuelle.",
			},
			Savings: savings(40, 90),
		}
	default:
		return analysis.Verdict{
			Status:   analysis.StatusOK,
			Priority: analysis.PriorityP3,
			Content: analysis.Content{
				Title: "Franchise équilibrée",
				Short: "Votre franchise est dans la fourchette usuelle.",
				Full:  "Votre franchise se situe dans la fourchette usuelle du marché.",
			},
		}
	}
}

// claimsHistory reads the declared claims over the last three years.
type claimsHistory struct{ base }

func (claimsHistory) Applies(a insurance.Answers) bool {
	return a.Has("sinistres_3_ans")
}

func (s claimsHistory) Evaluate(a insurance.Answers) analysis.Verdict {
	switch a.String("sinistres_3_ans") {
	case "2_plus":
		return analysis.Verdict{
			Status:   analysis.StatusDanger,
			Priority: analysis.PriorityP2,
			Content: analysis.Content{
				Title: "Sinistralité élevée",
				Short: "Plusieurs sinistres récents exposent à une résiliation assureur.",
				Full: "Avec deux sinistres ou plus en trois ans, l'assureur peut " +
					"résilier à l'échéance et le malus renchérit toute nouvelle " +
					"souscription. Anticipez le renouvellement et comparez les " +
					"assureurs spécialisés profils malussés.",
			},
		}
	case "1":
		return analysis.Verdict{
			Status:   analysis.StatusAttention,
			Priority: analysis.PriorityP3,
			Content: analysis.Content{
				Title: "Un sinistre récent",
				Short: "Un sinistre récent peut peser sur votre prime au renouvellement.",
				Full: "Un sinistre responsable applique un malus de 25% sur le " +
					"coefficient. Vérifiez son impact sur votre prochaine échéance.",
			},
		}
	default:
		return analysis.Verdict{
			Status:   analysis.StatusOK,
			Priority: analysis.PriorityP3,
			Content: analysis.Content{
				Title: "Historique propre",
				Short: "Aucun sinistre déclaré sur trois ans.",
				Full:  "Sans sinistre sur trois ans, votre bonus joue en votre faveur. Faites-le valoir en négociation.",
			},
		}
	}
}

// guaranteeGaps looks for commonly missing optional guarantees.
type guaranteeGaps struct{ base }

func (guaranteeGaps) Applies(a insurance.Answers) bool {
	return a.Has("garanties_incluses")
}

func (s guaranteeGaps) Evaluate(a insurance.Answers) analysis.Verdict {
	included := a.Strings("garanties_incluses")
	has := func(g string) bool {
		for _, e := range included {
			if e == g {
				return true
			}
		}
		return false
	}

	missing := []string{}
	if !has("assistance_0km") {
		missing = append(missing, "assistance 0 km")
	}
	if !has("protection_juridique") {
		missing = append(missing, "protection juridique")
	}
	if len(missing) == 0 {
		return analysis.Verdict{
			Status:   analysis.StatusOK,
			Priority: analysis.PriorityP3,
			Content: analysis.Content{
				Title: "Garanties annexes complètes",
				Short: "Les garanties annexes usuelles sont présentes.",
				Full:  "Assistance 0 km et protection juridique figurent dans votre contrat.",
			},
		}
	}
	return analysis.Verdict{
		Status:   analysis.StatusAttention,
		Priority: analysis.PriorityP3,
		Content: analysis.Content{
			Title: "Garanties annexes absentes",
			Short: "Certaines garanties annexes utiles manquent au contrat.",
			Full: "Votre contrat ne mentionne pas : " + joinFr(missing) + ". " +
				"Ces options coûtent quelques euros par mois et évitent des frais " +
				"importants en cas de panne à domicile ou de litige.",
		},
	}
}

func joinFr(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	default:
		out := items[0]
		for _, it := range items[1 : len(items)-1] {
			out += ", " + it
		}
		return out + " et " + items[len(items)-1]
	}
}
