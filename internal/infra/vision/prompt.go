// Package vision talks to vision-capable language models and normalizes what they return.
package vision

// analysisPrompt is sent unchanged to every backend.
const analysisPrompt = `You are a specialty coffee expert. Look at the photo of a coffee bag and describe the beans inside.

Respond with a single JSON object and nothing else, using exactly these keys:
{
  "identified": boolean,             // false when the photo does not show a coffee bag or beans
  "confidence": number,              // 0.0 to 1.0
  "beanType": string,                // e.g. "Ethiopia Yirgacheffe", required when identified is true
  "possibleOrigin": string,
  "roastLevel": string,              // light, medium-light, medium, medium-dark or dark
  "roastLevelConfidence": number,    // 0.0 to 1.0
  "observations": [string],
  "suggestedBrewMethods": [string],
  "brewParameters": {
    "<method>": {
      "grindSize": string,
      "waterTemperature": string,
      "ratio": string,
      "brewTime": string,
      "dose": string,
      "yield": string,
      "notes": string
    }
  },
  "tastingNotesLikely": [string],
  "warnings": [string]
}

If you cannot identify coffee, return {"identified": false} with any observations you can make.`

// maxOutputTokens bounds the model reply on backends that require it.
const maxOutputTokens = 1024
