package sentiment

var negators = []string{"not", "no", "never"}

// positiveWords and negativeWords are tuned for startup funding headlines.
var positiveWords = []string{
	"raise", "raises", "raised", "secure", "secures", "secured", "land", "lands",
	"win", "wins", "won", "growth", "grow", "grows", "surge", "surges", "soar", "soars",
	"boost", "boosts", "expand", "expands", "expansion", "launch", "launches", "launched",
	"record", "success", "successful", "milestone", "innovative", "innovation", "leading",
	"best", "great", "strong", "profitable", "profit", "unicorn", "oversubscribed",
	"backed", "accelerate", "accelerates", "partnership", "award", "breakthrough",
}

var negativeWords = []string{
	"layoff", "layoffs", "cut", "cuts", "shutdown", "shuts", "bankrupt", "bankruptcy",
	"lawsuit", "sued", "sues", "breach", "hack", "hacked", "loss", "losses", "decline",
	"declines", "drop", "drops", "fall", "falls", "fail", "fails", "failed", "failure",
	"struggle", "struggles", "downturn", "fraud", "fined", "scandal", "crash",
	"worst", "bad", "weak", "delay", "delays", "outage", "closes", "collapse",
}
