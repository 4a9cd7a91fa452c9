package prompt

import "fmt"

// DealPrediction builds the prompt pair for the pipeline-prediction analysis.
// dealsJSON is the pretty-printed deal list supplied by the caller.
func DealPrediction(dealsJSON string) Prompt {
	return Prompt{
		System: `Tu es un expert en analyse prédictive de ventes CRM. Tu analyses les deals et prédit leur probabilité de conclusion.

Pour chaque deal, tu dois fournir:
1. Une probabilité prédite (0-100%) basée sur les signaux
2. Un niveau de confiance dans ta prédiction (0-100%)
3. La tendance (up/down/stable)
4. Les facteurs de risque identifiés
5. Les opportunités détectées
6. Une recommandation d'action concrète
7. Une date de clôture estimée
8. Une valeur prédite (peut différer de la valeur actuelle)

Analyse les patterns suivants:
- Stage avancé = probabilité plus élevée
- Temps trop long dans un stage = risque
- Valeur élevée = cycle plus long
- Historique de l'entreprise
- Saisonnalité

Réponds UNIQUEMENT avec un JSON valide, sans texte avant ou après.`,
		User: fmt.Sprintf(`Analyse ces deals et prédit leur probabilité de conclusion:

%s

Réponds avec un tableau JSON de prédictions pour chaque deal avec cette structure:
{
  "predictions": [
    {
      "dealId": number,
      "dealName": string,
      "company": string,
      "currentProbability": number,
      "predictedProbability": number,
      "confidence": number,
      "trend": "up" | "down" | "stable",
      "riskFactors": string[],
      "opportunities": string[],
      "recommendation": string,
      "expectedCloseDate": string (format ISO),
      "predictedValue": number
    }
  ],
  "summary": {
    "totalPipelineValue": number,
    "weightedPipelineValue": number,
    "highConfidenceDeals": number,
    "atRiskDeals": number,
    "topOpportunity": string
  }
}`, dealsJSON),
	}
}
