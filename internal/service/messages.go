package service

// Player-facing texts
const (
	guardianPersona = "You are the AI Guardian. You will read the user's argument, " +
		"and respond with a short evaluation or question. " +
		"Be cryptic yet whimsical."

	msgWelcome = "Welcome to the Vault of Echoes! I am the AI Guardian.\n" +
		"Let's begin with a quick test of your reasoning."

	msgFirstPuzzle = "Your first puzzle:\n%s"
	msgNextPuzzle  = "Your next puzzle:\n%s"

	msgPersuasionIntro = "One last trial: convince me that you are worthy of the Vault."

	msgPuzzleSolved = "Correct! You've solved %s. You've gained 2 ANQ tokens.\n" +
		"Proceeding to the next phase: %s."

	msgTryAgain = "That doesn't seem right. Type 'hint' to spend tokens for a clue, " +
		"or try another answer."

	msgNoHints         = "There are no hints available for this puzzle."
	msgNotEnoughTokens = "You do not have enough tokens to purchase a hint."
	msgPuzzleNotFound  = "Puzzle not found. Something went wrong."

	msgConvinced = "AI Guardian says: %s\n\n" +
		"Your argument has convinced me. Proceed to the Vault!\n" +
		"Type 'enter vault' to claim your reward."

	msgNotConvinced = "AI Guardian says: %s\n\n" +
		"The Guardian is not yet fully convinced. Please elaborate further."

	msgGuardianFallback = "The Guardian's voice fades into static. It will speak again soon."

	msgVaultOpened = "The vault door slides open... You've been granted 10 ANQ tokens! " +
		"Congratulations on unlocking the Vault of Echoes.\n" +
		"Type anything to continue."

	msgClaimReward = "To claim your reward, type 'enter vault'."

	msgPostGame = "You have completed this challenge. Keep exploring for more secrets!"

	msgUnknownPhase = "I'm not sure what you want to do next."

	msgInternalError = "Something went wrong on my side. Please try again."
)
